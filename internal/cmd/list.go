package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"workspace/internal/services"
)

// ListCmd lists all workspaces
type ListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Stats  bool   `help:"Include git stats (ahead/behind, changed files)"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	reg, err := cli.Container.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	rows := cli.Container.StatusService.Snapshot(ctx, reg, l.Stats)

	if l.Format == "json" {
		return l.outputJSON(rows)
	}
	return l.outputTable(rows)
}

func (l *ListCmd) outputJSON(rows []services.WorkspaceStatus) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (l *ListCmd) outputTable(rows []services.WorkspaceStatus) error {
	if len(rows) == 0 {
		fmt.Println("No workspaces")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "PROJECT\tWORKSPACE\tBRANCH\tINFRA\tAGENT"
	if l.Stats {
		header += "\tGIT"
	}
	fmt.Fprintln(w, header)

	for _, row := range rows {
		ws := row.Workspace

		branch := ws.WorktreeName
		if branch == "" {
			branch = "-"
		}

		infra := "down"
		if ws.Started {
			infra = "up"
		}

		agent := string(ws.ClaudeProcess.Status)
		if row.Observed != "" {
			agent = string(row.Observed)
		}

		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s", ws.Project, ws.Name, branch, infra, agent)
		if l.Stats {
			line += "\t" + gitSummary(row)
		}
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}

// gitSummary formats a row's git stats for the table, "-" when missing
func gitSummary(row services.WorkspaceStatus) string {
	st := row.Stats
	if st == nil {
		return "-"
	}
	if st.Error != nil {
		return "error"
	}

	out := fmt.Sprintf("↑%d ↓%d", st.Ahead, st.Behind)
	if st.ChangedFiles > 0 {
		out += fmt.Sprintf(" ~%d +%d/-%d", st.ChangedFiles, st.Additions, st.Deletions)
	}
	return out
}
