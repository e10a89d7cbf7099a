package ports

// PaneProcess is one child process of a tmux pane's shell
type PaneProcess struct {
	Command string
	PID     int
	State   string // ps state string, leading char distinguishes R/S/...
}

// ProcessInspector enumerates processes running inside tmux panes
type ProcessInspector interface {
	// PaneProcesses returns the child processes of the given pane's shell.
	// A missing pane yields an empty slice, not an error.
	PaneProcesses(session string, pane int) ([]PaneProcess, error)
}
