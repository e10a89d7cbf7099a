package cmd

import (
	"context"
	"fmt"
	"strings"

	"workspace/internal/domain"
)

// TaskShowCmd shows a task's plan and progress
type TaskShowCmd struct {
	ID string `arg:"" help:"Task id to show"`
}

// Run executes the task show command
func (t *TaskShowCmd) Run(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	task, err := findTask(reg, t.ID)
	if err != nil {
		// Unconfirmed plans live only in their plan file
		task, err = cli.Container.TaskService.LoadPlan(t.ID)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Task: %s\n", task.ID)
	fmt.Printf("Name: %s\n", task.Name)
	fmt.Printf("Project: %s\n", task.Project)
	fmt.Printf("Type: %s\n", task.Type)
	fmt.Printf("Status: %s\n", task.Status)
	fmt.Printf("Created: %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Description: %s\n", task.Description)

	fmt.Printf("\nSubtasks (%d):\n", len(task.Subtasks))
	for _, st := range task.Subtasks {
		fmt.Printf("  [%s] %s  %s\n", subtaskMark(st.Status), st.ID, st.Name)
		if len(st.Dependencies) > 0 {
			fmt.Printf("      after: %s\n", strings.Join(st.Dependencies, ", "))
		}
		if st.WorkspaceName != "" {
			fmt.Printf("      workspace: %s\n", st.WorkspaceName)
		}
	}
	return nil
}

// subtaskMark maps a subtask status to a single-character progress marker
func subtaskMark(status domain.SubtaskStatus) string {
	switch status {
	case domain.SubtaskCompleted:
		return "x"
	case domain.SubtaskInProgress:
		return ">"
	default:
		return " "
	}
}
