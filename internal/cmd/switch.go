package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
)

// SwitchCmd switches to a workspace, recreating its tmux session when it has
// gone away
type SwitchCmd struct {
	Name     string `arg:"" help:"Name of the workspace to switch to"`
	NoAttach bool   `help:"Print the attach command instead of attaching"`
}

// Run executes the switch command
func (s *SwitchCmd) Run(cli *CLI) error {
	var attach string
	var ws *domain.Workspace

	// Session recreation mutates the registry, so the lookup runs inside the
	// transaction. The interactive attach happens after the lock is released.
	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		var err error
		ws, err = findWorkspace(reg, s.Name)
		if err != nil {
			return err
		}

		attach, err = cli.Container.WorkspaceService.Switch(ws)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to switch workspace: %w", err)
	}

	if attach == "" {
		fmt.Printf("Workspace directory: %s\n", ws.Path)
		fmt.Println("No agent session for this workspace")
		return nil
	}

	if s.NoAttach {
		fmt.Printf("cd %s\n", ws.Path)
		fmt.Println(attach)
		return nil
	}

	return attachWorkspace(cli, ws)
}

// attachWorkspace attaches the terminal to the workspace's session and blocks
// until detach
func attachWorkspace(cli *CLI, ws *domain.Workspace) error {
	fmt.Printf("Attaching to %s (Ctrl+Q to detach)\n", ws.TmuxSession)

	done, err := cli.Container.WorkspaceService.Attach(ws)
	if err != nil {
		return fmt.Errorf("failed to attach: %w", err)
	}
	<-done
	return nil
}
