package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// StopCmd stops a workspace's infrastructure
type StopCmd struct {
	Name string `arg:"" help:"Name of the workspace to stop"`
}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		ws, err := findWorkspace(reg, s.Name)
		if err != nil {
			return err
		}
		return cli.Container.WorkspaceService.Stop(reg, ws)
	})
	if err != nil {
		return fmt.Errorf("failed to stop infrastructure: %w", err)
	}

	fmt.Printf("Infrastructure stopped for workspace '%s'\n", s.Name)
	return nil
}
