package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// TaskConfirmCmd confirms a reviewed plan and starts the task
type TaskConfirmCmd struct {
	ID string `arg:"" help:"Task id to confirm"`
}

// Run executes the task confirm command
func (t *TaskConfirmCmd) Run(cli *CLI) error {
	var task *domain.Task

	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		var err error
		task, err = cli.Container.TaskService.ConfirmPlan(reg, t.ID)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("Task %s confirmed (%d subtasks)\n", task.ID, len(task.Subtasks))

	ready := task.ReadySubtasks()
	if len(ready) > 0 {
		fmt.Println("Ready to start:")
		for _, st := range ready {
			fmt.Printf("  workspace task start %s %s\n", task.ID, st.ID)
		}
	}
	return nil
}
