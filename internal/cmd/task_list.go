package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"workspace/internal/domain"
)

// TaskListCmd lists confirmed tasks
type TaskListCmd struct{}

// Run executes the task list command
func (t *TaskListCmd) Run(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPROJECT\tTYPE\tSTATUS\tPROGRESS")
	for _, task := range reg.Tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			task.ID, task.Name, task.Project, task.Type, task.Status,
			countCompleted(task), len(task.Subtasks))
	}
	return w.Flush()
}

// countCompleted counts a task's completed subtasks
func countCompleted(task *domain.Task) int {
	n := 0
	for _, st := range task.Subtasks {
		if st.Status == domain.SubtaskCompleted {
			n++
		}
	}
	return n
}
