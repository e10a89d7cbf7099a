package cmd

import (
	"context"
	"fmt"

	"workspace/internal/domain"
	"workspace/internal/services"
)

// CreateCmd creates a new workspace
type CreateCmd struct {
	Branch       string `help:"Base branch to fork the worktree from (defaults to HEAD)" default:""`
	Name         string `arg:"" help:"Name of the workspace to create"`
	NoReuse      bool   `help:"Always create a fresh worktree instead of reusing an orphaned one"`
	Project      string `help:"Project to create the workspace in" short:"p" default:""`
	Prompt       string `help:"Initial prompt to send to the agent session" default:""`
	WorktreeName string `help:"Worktree and branch name (defaults to a generated pet name)" default:""`
}

// Run executes the create command
func (c *CreateCmd) Run(cli *CLI) error {
	var ws *domain.Workspace

	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		project, err := resolveProject(reg, c.Project)
		if err != nil {
			return err
		}

		ws, err = cli.Container.WorkspaceService.Create(reg, project, c.Name, services.CreateOptions{
			BaseBranch:    c.Branch,
			InitialPrompt: c.Prompt,
			ReuseWorktree: !c.NoReuse,
			WorktreeName:  c.WorktreeName,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	fmt.Printf("Workspace '%s' created at %s\n", ws.Name, ws.Path)
	if ws.TmuxSession != "" {
		fmt.Printf("Agent session: %s\n", ws.TmuxSession)
	} else {
		fmt.Println("No agent session (tmux unavailable), workspace registered anyway")
	}
	return nil
}
