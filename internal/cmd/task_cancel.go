package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"workspace/internal/domain"
)

// TaskCancelCmd cancels a task and tears down its workspaces
type TaskCancelCmd struct {
	Force bool   `help:"Skip confirmation and force worktree removal" short:"f"`
	ID    string `arg:"" help:"Task id to cancel"`
}

// Run executes the task cancel command
func (t *TaskCancelCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if !t.Force {
		reg, err := cli.Container.LoadRegistry(ctx)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		task, err := findTask(reg, t.ID)
		if err != nil {
			return err
		}

		confirmed, err := confirmCancel(task)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	err := cli.Container.WithRegistry(ctx, func(reg *domain.Registry) error {
		task, err := findTask(reg, t.ID)
		if err != nil {
			return err
		}
		return cli.Container.TaskService.CancelTask(reg, task, t.Force)
	})
	if err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}

	fmt.Printf("Task %s cancelled\n", t.ID)
	return nil
}

// confirmCancel asks for confirmation before tearing down task workspaces
func confirmCancel(task *domain.Task) (bool, error) {
	active := 0
	for _, st := range task.Subtasks {
		if st.WorkspaceName != "" {
			active++
		}
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Cancel task %s '%s'?", task.ID, task.Name)).
				Description(fmt.Sprintf("This destroys %d task workspace(s). The plan file is kept.", active)).
				Value(&confirmed).
				Affirmative("Cancel task").
				Negative("Keep"),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
