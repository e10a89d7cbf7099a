package cmd

import (
	"context"
	"fmt"
)

// AttachCmd attaches to a workspace's tmux session
type AttachCmd struct {
	Name  string `arg:"" help:"Name of the workspace to attach to"`
	Print bool   `help:"Print the attach command instead of attaching"`
}

// Run executes the attach command
func (a *AttachCmd) Run(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	ws, err := findWorkspace(reg, a.Name)
	if err != nil {
		return err
	}

	if a.Print {
		cmd, err := cli.Container.WorkspaceService.AttachCommand(ws)
		if err != nil {
			return err
		}
		fmt.Println(cmd)
		return nil
	}

	return attachWorkspace(cli, ws)
}
