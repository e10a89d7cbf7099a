package cmd

import (
	"context"
	"fmt"
)

// TaskReadyCmd lists subtasks whose dependencies are satisfied
type TaskReadyCmd struct {
	ID string `arg:"" help:"Task id to inspect"`
}

// Run executes the task ready command
func (t *TaskReadyCmd) Run(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	task, err := findTask(reg, t.ID)
	if err != nil {
		return err
	}

	ready := task.ReadySubtasks()
	if len(ready) == 0 {
		fmt.Println("No subtasks ready")
		return nil
	}

	for _, st := range ready {
		fmt.Printf("%s  %s\n", st.ID, st.Name)
	}
	return nil
}
