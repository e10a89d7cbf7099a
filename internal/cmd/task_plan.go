package cmd

import (
	"context"
	"fmt"
	"strings"
)

// TaskPlanCmd runs the planning agent on a task description
type TaskPlanCmd struct {
	Agent       string `help:"Planning agent command (overrides the project's configured agent)" default:""`
	Description string `arg:"" help:"What the task should accomplish"`
	Project     string `help:"Project to plan against" short:"p" default:""`
}

// Run executes the task plan command
func (t *TaskPlanCmd) Run(cli *CLI) error {
	ctx := context.Background()

	reg, err := cli.Container.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	project, err := resolveProject(reg, t.Project)
	if err != nil {
		return err
	}

	fmt.Printf("Planning task for project '%s'...\n", project.Name)

	task, path, err := cli.Container.TaskService.CreatePlan(ctx, project, t.Description, t.Agent)
	if err != nil {
		return err
	}

	fmt.Printf("\nTask %s: %s (%s, %d subtasks)\n", task.ID, task.Name, task.Type, len(task.Subtasks))
	for _, st := range task.Subtasks {
		deps := ""
		if len(st.Dependencies) > 0 {
			deps = " (after " + strings.Join(st.Dependencies, ", ") + ")"
		}
		fmt.Printf("  %s  %s%s\n", st.ID, st.Name, deps)
	}
	fmt.Printf("\nPlan written to %s\n", path)
	fmt.Printf("Review it, then run: workspace task confirm %s\n", task.ID)
	return nil
}
