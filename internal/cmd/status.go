package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"workspace/internal/domain"
)

// StatusCmd shows agent status for one or all workspaces
type StatusCmd struct {
	All  bool   `help:"Poll every workspace, persist state transitions, and report fresh completions"`
	Name string `arg:"" optional:"" help:"Workspace to inspect"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	if s.All {
		return s.runSweep(cli)
	}
	if s.Name != "" {
		return s.runDetail(cli)
	}
	return s.runSummary(cli)
}

// runSweep advances every workspace's persisted state and reports the ones
// that completed since the last check
func (s *StatusCmd) runSweep(cli *CLI) error {
	var completed []*domain.Workspace

	err := cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		completed = cli.Container.MonitorService.CheckCompleted(reg)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to check workspaces: %w", err)
	}

	if len(completed) == 0 {
		fmt.Println("No newly completed workspaces")
		return nil
	}

	for _, ws := range completed {
		fmt.Printf("✓ %s completed", ws.Name)
		if ws.ClaudeProcess.ResultFile != "" {
			fmt.Printf(" (output: %s)", ws.ClaudeProcess.ResultFile)
		}
		fmt.Println()
	}
	return nil
}

// runDetail prints the full record of one workspace plus a live observation
func (s *StatusCmd) runDetail(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	ws, err := findWorkspace(reg, s.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Workspace: %s\n", ws.Name)
	fmt.Printf("Project: %s\n", ws.Project)
	fmt.Printf("Path: %s\n", ws.Path)
	fmt.Printf("Worktree: %s\n", ws.WorktreeName)
	if ws.TmuxSession != "" {
		fmt.Printf("Session: %s\n", ws.TmuxSession)
	} else {
		fmt.Printf("Session: <none>\n")
	}
	fmt.Printf("Infrastructure: %s\n", infraLabel(ws.Started))
	fmt.Printf("Agent Status: %s\n", ws.ClaudeProcess.Status)

	if obs, err := cli.Container.MonitorService.Observe(ws); err != nil {
		fmt.Printf("Observed: <error: %v>\n", err)
	} else if obs != "" {
		fmt.Printf("Observed: %s\n", obs)
	}

	proc := ws.ClaudeProcess
	if proc.StartTime != nil {
		fmt.Printf("Started At: %s\n", proc.StartTime.Format("2006-01-02 15:04:05"))
	}
	if proc.EndTime != nil {
		fmt.Printf("Ended At: %s\n", proc.EndTime.Format("2006-01-02 15:04:05"))
	}
	if proc.ExitCode != nil {
		fmt.Printf("Exit Code: %d\n", *proc.ExitCode)
	}
	if proc.ResultFile != "" {
		fmt.Printf("Result File: %s\n", proc.ResultFile)
	}
	if proc.ErrorMessage != "" {
		fmt.Printf("Error: %s\n", proc.ErrorMessage)
	}

	return nil
}

// runSummary prints one observed line per workspace without persisting
// anything
func (s *StatusCmd) runSummary(cli *CLI) error {
	ctx := context.Background()

	reg, err := cli.Container.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Workspaces) == 0 {
		fmt.Println("No workspaces")
		return nil
	}

	rows := cli.Container.StatusService.Snapshot(ctx, reg, false)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT\tWORKSPACE\tAGENT")
	for _, row := range rows {
		agent := string(row.Workspace.ClaudeProcess.Status)
		if row.Observed != "" {
			agent = string(row.Observed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Workspace.Project, row.Workspace.Name, agent)
	}
	return w.Flush()
}

// infraLabel renders the infrastructure flag for display
func infraLabel(started bool) string {
	if started {
		return "up"
	}
	return "down"
}
