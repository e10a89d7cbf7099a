package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// StartCmd starts a workspace's infrastructure
type StartCmd struct {
	Name string `arg:"" help:"Name of the workspace to start"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		ws, err := findWorkspace(reg, s.Name)
		if err != nil {
			return err
		}
		return cli.Container.WorkspaceService.Start(reg, ws)
	})
	if err != nil {
		return fmt.Errorf("failed to start infrastructure: %w", err)
	}

	fmt.Printf("Infrastructure started for workspace '%s'\n", s.Name)
	return nil
}
