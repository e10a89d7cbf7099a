package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// TaskCompleteCmd marks a subtask completed
type TaskCompleteCmd struct {
	TaskID    string `arg:"" help:"Task the subtask belongs to"`
	SubtaskID string `arg:"" help:"Subtask id to complete"`
}

// Run executes the task complete command
func (t *TaskCompleteCmd) Run(cli *CLI) error {
	var task *domain.Task

	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		var err error
		task, err = findTask(reg, t.TaskID)
		if err != nil {
			return err
		}

		_, err = cli.Container.TaskService.CompleteSubtask(task, t.SubtaskID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to complete subtask: %w", err)
	}

	fmt.Printf("Subtask %s completed\n", t.SubtaskID)

	if task.Status == domain.TaskCompleted {
		fmt.Printf("Task %s completed\n", task.ID)
		return nil
	}

	ready := task.ReadySubtasks()
	if len(ready) > 0 {
		fmt.Println("Now ready:")
		for _, st := range ready {
			fmt.Printf("  workspace task start %s %s\n", task.ID, st.ID)
		}
	}
	return nil
}
