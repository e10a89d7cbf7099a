package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// TaskStartCmd starts a subtask in its workspace
type TaskStartCmd struct {
	TaskID    string `arg:"" help:"Task the subtask belongs to"`
	SubtaskID string `arg:"" help:"Subtask id to start"`
}

// Run executes the task start command
func (t *TaskStartCmd) Run(cli *CLI) error {
	var st *domain.Subtask

	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		task, err := findTask(reg, t.TaskID)
		if err != nil {
			return err
		}

		st, err = cli.Container.TaskService.ExecuteSubtask(reg, task, t.SubtaskID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to start subtask: %w", err)
	}

	fmt.Printf("Subtask %s '%s' started in workspace '%s'\n", st.ID, st.Name, st.WorkspaceName)
	fmt.Printf("Attach with: workspace attach %s\n", st.WorkspaceName)
	return nil
}
