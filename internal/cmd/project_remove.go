package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// ProjectRemoveCmd removes a project from the registry. The checkout on disk
// is left alone.
type ProjectRemoveCmd struct {
	Name string `arg:"" help:"Name of the project to remove"`
}

// Run executes the project remove command
func (p *ProjectRemoveCmd) Run(cli *CLI) error {
	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		if reg.ProjectByName(p.Name) == nil {
			return fmt.Errorf("project %s: %w", p.Name, domain.ErrProjectNotFound)
		}

		if workspaces := reg.ProjectWorkspaces(p.Name); len(workspaces) > 0 {
			return fmt.Errorf("project %s still has %d workspace(s), destroy them first", p.Name, len(workspaces))
		}

		reg.RemoveProject(p.Name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove project: %w", err)
	}

	fmt.Printf("Project '%s' removed\n", p.Name)
	return nil
}
