package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"workspace/internal/domain"
	"workspace/internal/services"
	"workspace/internal/theme"
)

// statusHeaders are the dashboard columns
var statusHeaders = []string{"PROJECT", "WORKSPACE", "BRANCH", "INFRA", "AGENT", "GIT"}

// renderStatusTable renders the rows as an aligned, styled table
func renderStatusTable(rows []services.WorkspaceStatus) string {
	if len(rows) == 0 {
		return theme.MutedStyle.Render("no workspaces") + "\n"
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		ws := row.Workspace
		cells = append(cells, []string{
			theme.NormalStyle.Render(ws.Project),
			theme.NormalStyle.Render(ws.Name),
			theme.BranchStyle.Render(branchCell(ws)),
			infraCell(ws),
			agentCell(row),
			gitCell(row.Stats),
		})
	}

	widths := make([]int, len(statusHeaders))
	for i, h := range statusHeaders {
		widths[i] = len(h)
	}
	for _, line := range cells {
		for i, cell := range line {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range statusHeaders {
		b.WriteString(pad(theme.HeaderStyle.Render(h), widths[i]))
		if i < len(statusHeaders)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, line := range cells {
		for i, cell := range line {
			b.WriteString(pad(cell, widths[i]))
			if i < len(line)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// branchCell shows the worktree branch, or a dash for workspaces without one
func branchCell(ws *domain.Workspace) string {
	if ws.WorktreeName == "" {
		return "-"
	}
	return ws.WorktreeName
}

// infraCell shows whether the project infrastructure is up in this workspace
func infraCell(ws *domain.Workspace) string {
	if ws.Started {
		return theme.RunningStyle.Render("up")
	}
	return theme.MutedStyle.Render("down")
}

// agentCell blends the live observation with the persisted process status
func agentCell(row services.WorkspaceStatus) string {
	ws := row.Workspace

	switch row.Observed {
	case domain.ObservedRunning:
		return theme.RunningStyle.Render("running")
	case domain.ObservedStopped:
		return theme.StoppedStyle.Render("stopped")
	case domain.ObservedCompleted:
		return theme.CompletedStyle.Render("completed")
	case domain.ObservedOther:
		return theme.MutedStyle.Render("other")
	case domain.ObservedAbsent:
		if ws.ClaudeProcess.Status == domain.ProcessFailed {
			return theme.FailedStyle.Render("failed")
		}
		return theme.AbsentStyle.Render("absent")
	}

	// No observation this pass, fall back to the persisted status
	return theme.MutedStyle.Render(string(ws.ClaudeProcess.Status))
}

// gitCell summarizes ahead/behind and working tree changes
func gitCell(stats *domain.GitStats) string {
	if stats == nil {
		return theme.MutedStyle.Render("-")
	}
	if stats.Clean() {
		return theme.MutedStyle.Render("clean")
	}

	parts := make([]string, 0, 3)
	if stats.Ahead > 0 {
		parts = append(parts, theme.AheadStyle.Render(fmt.Sprintf("↑%d", stats.Ahead)))
	}
	if stats.Behind > 0 {
		parts = append(parts, theme.BehindStyle.Render(fmt.Sprintf("↓%d", stats.Behind)))
	}
	if stats.ChangedFiles > 0 {
		parts = append(parts, theme.DirtyStyle.Render(
			fmt.Sprintf("~%d +%d/-%d", stats.ChangedFiles, stats.Additions, stats.Deletions)))
	}
	return strings.Join(parts, " ")
}

// completionFlash builds the announcement line for freshly completed workspaces
func completionFlash(completed []*domain.Workspace) string {
	names := make([]string, 0, len(completed))
	for _, ws := range completed {
		names = append(names, ws.Name)
	}
	return "✓ " + strings.Join(names, ", ") + " completed"
}

// pad right-pads a styled cell to the column width, counting visible runes
func pad(cell string, width int) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}
