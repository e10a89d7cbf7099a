package cmd

import (
	"context"
	"fmt"
)

// RunCmd runs a command inside a workspace directory
type RunCmd struct {
	Name string   `arg:"" help:"Name of the workspace to run in"`
	Argv []string `arg:"" passthrough:"" help:"Command and arguments to run"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	if len(r.Argv) == 0 {
		return fmt.Errorf("no command given")
	}

	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	ws, err := findWorkspace(reg, r.Name)
	if err != nil {
		return err
	}

	return cli.Container.WorkspaceService.Run(ws, r.Argv)
}
