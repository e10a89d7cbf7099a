package ports

import "errors"

var (
	ErrTmuxSessionNotFound = errors.New("tmux session not found")
	ErrTmuxNotAttached     = errors.New("not attached to tmux session")
	ErrTmuxAlreadyAttached = errors.New("already attached to tmux session")
)

// SessionManager handles tmux session lifecycle. Sessions are created with
// two panes: pane 0 a plain shell, pane 1 running the agent.
type SessionManager interface {
	// CreateSession creates the two-pane session and launches the agent in
	// pane 1, passing initialPrompt as its argument when non-empty. Creation
	// is idempotent: an existing session is left untouched and reported true.
	CreateSession(name, startDir, initialPrompt string) (bool, error)
	// DestroySession kills the session. Returns false with a nil error when
	// it did not exist.
	DestroySession(name string) (bool, error)
	// SessionExists probes for the session
	SessionExists(name string) bool
	// ListSessions returns all active session names
	ListSessions() ([]string, error)
}

// SessionIO covers interaction with an existing session
type SessionIO interface {
	// AttachCommand returns the shell command a caller must run to attach.
	// Returns ErrTmuxSessionNotFound when the session is absent.
	AttachCommand(name string) (string, error)
	// Attach attaches interactively through a pty. The returned channel
	// closes on detach.
	Attach(name string) (chan struct{}, error)
	// CapturePaneToFile captures the agent pane's full scrollback to the
	// session capture file and returns its path
	CapturePaneToFile(name string) (string, error)
	// SendKeys sends keystrokes to the session
	SendKeys(name string, keys ...string) error
}

// TmuxClient is the composite interface
type TmuxClient interface {
	SessionIO
	SessionManager
}
