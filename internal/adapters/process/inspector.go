package process

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"workspace/internal/logging"
	"workspace/internal/ports"
)

// OSProcessInspector implements ports.ProcessInspector using ps and tmux
type OSProcessInspector struct{}

// Compile-time interface verification
var _ ports.ProcessInspector = (*OSProcessInspector)(nil)

// NewOSProcessInspector creates a new OS process inspector
func NewOSProcessInspector() *OSProcessInspector {
	return &OSProcessInspector{}
}

// PaneProcesses returns the child processes of the pane's shell. A pane
// that no longer exists yields an empty slice, not an error.
func (i *OSProcessInspector) PaneProcesses(session string, pane int) ([]ports.PaneProcess, error) {
	target := fmt.Sprintf("%s.%d", session, pane)

	cmd := exec.Command("tmux", "has-session", "-t", target)
	if err := cmd.Run(); err != nil {
		logging.Logger.Debug("Pane not found", "target", target)
		return []ports.PaneProcess{}, nil
	}

	cmd = exec.Command("tmux", "display-message", "-p", "-t", target, "#{pane_pid}")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get tmux pane PID: %w", err)
	}

	panePID := strings.TrimSpace(string(output))
	if panePID == "" {
		return []ports.PaneProcess{}, nil
	}

	cmd = exec.Command("ps", "-o", "pid,command,state", "--ppid", panePID)
	output, err = cmd.Output()
	if err != nil {
		// ps exits 1 when the pane shell has no children
		if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("failed to get processes for pane: %w", err)
		}
	}

	processes := parsePaneProcesses(string(output))
	logging.Logger.Debug("Inspected pane", "target", target, "pane_pid", panePID, "count", len(processes))
	return processes, nil
}

// parsePaneProcesses parses ps -o pid,command,state output. The first line
// is the header; the state column is the last field of each row, with the
// command (including its arguments) in between.
func parsePaneProcesses(output string) []ports.PaneProcess {
	processes := []ports.PaneProcess{}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 1 {
		return processes
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}

		processes = append(processes, ports.PaneProcess{
			PID:     pid,
			Command: strings.Join(fields[1:len(fields)-1], " "),
			State:   fields[len(fields)-1],
		})
	}

	return processes
}
