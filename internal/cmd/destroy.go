package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"workspace/internal/domain"
)

// DestroyCmd destroys a workspace and removes its worktree
type DestroyCmd struct {
	Force bool   `help:"Skip confirmation and remove the worktree even with uncommitted changes" short:"f"`
	Name  string `arg:"" help:"Name of the workspace to destroy"`
}

// Run executes the destroy command
func (d *DestroyCmd) Run(cli *CLI) error {
	ctx := context.Background()

	// Confirm before taking the registry lock
	reg, err := cli.Container.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	ws, err := findWorkspace(reg, d.Name)
	if err != nil {
		return err
	}

	if !d.Force {
		confirmed, err := confirmDestroy(ws)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	err = cli.Container.WithRegistry(ctx, func(reg *domain.Registry) error {
		ws, err := findWorkspace(reg, d.Name)
		if err != nil {
			return err
		}
		return cli.Container.WorkspaceService.Destroy(reg, ws, d.Force)
	})
	if err != nil {
		return fmt.Errorf("failed to destroy workspace: %w", err)
	}

	fmt.Printf("Workspace '%s' destroyed\n", d.Name)
	return nil
}

// confirmDestroy asks for confirmation before removing the worktree
func confirmDestroy(ws *domain.Workspace) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Destroy workspace '%s'?", ws.Name)).
				Description(fmt.Sprintf("This removes the worktree at %s and kills its agent session.", ws.Path)).
				Value(&confirmed).
				Affirmative("Destroy").
				Negative("Keep"),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
