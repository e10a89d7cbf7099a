package tmux

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/creack/pty"

	"workspace/internal/config"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// agentPane is the pane index the agent runs in. Pane 0 stays a plain shell.
const agentPane = 1

// agentAllowedTools is passed to the agent CLI on session creation
const agentAllowedTools = "Bash,GlobTool,GrepTool,View,LS"

// attachmentState tracks the state of an attached session
type attachmentState struct {
	ptmx     *os.File
	attachCh chan struct{}
	mu       sync.Mutex
}

// DefaultClient implements ports.TmuxClient using the tmux binary
type DefaultClient struct {
	attachedSessions map[string]*attachmentState
	mu               sync.Mutex
}

// Compile-time interface verification
var _ ports.TmuxClient = (*DefaultClient)(nil)

// NewClient creates a new DefaultClient instance
func NewClient() *DefaultClient {
	return &DefaultClient{
		attachedSessions: make(map[string]*attachmentState),
	}
}

// paneTarget returns the tmux target for the agent pane of a session
func paneTarget(session string) string {
	return fmt.Sprintf("%s.%d", session, agentPane)
}

// escapePrompt escapes a prompt for use as a single-quoted shell argument
// inside a tmux send-keys command
func escapePrompt(prompt string) string {
	escaped := strings.ReplaceAll(prompt, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	escaped = strings.ReplaceAll(escaped, `;`, `\;`)
	return escaped
}

// agentCommand builds the command line that launches the agent in pane 1
func agentCommand(initialPrompt string) string {
	cmd := fmt.Sprintf("claude --allowedTools %s", agentAllowedTools)
	if initialPrompt != "" {
		cmd = fmt.Sprintf("%s '%s'", cmd, escapePrompt(initialPrompt))
	}
	return cmd
}

// CreateSession creates a detached two-pane session: pane 0 a plain shell,
// pane 1 running the agent with the optional initial prompt. An existing
// session is left untouched and reported true.
func (c *DefaultClient) CreateSession(name, startDir, initialPrompt string) (bool, error) {
	logging.Logger.Info("Creating tmux session", "name", name, "start_dir", startDir)

	if c.SessionExists(name) {
		logging.Logger.Debug("Session already exists", "name", name)
		return true, nil
	}

	cmd := exec.Command("tmux", "new-session", "-d", "-s", name, "-c", startDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return false, fmt.Errorf("failed to create tmux session: %w\nOutput: %s", err, string(output))
	}

	// Second pane, same working directory
	cmd = exec.Command("tmux", "split-window", "-h", "-t", name, "-c", startDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return false, fmt.Errorf("failed to split tmux window: %w\nOutput: %s", err, string(output))
	}

	startCmd := agentCommand(initialPrompt)
	logging.Logger.Debug("Launching agent in pane", "target", paneTarget(name), "command", startCmd)
	if err := c.SendKeys(paneTarget(name), startCmd, "Enter"); err != nil {
		return false, fmt.Errorf("failed to start agent in tmux pane: %w", err)
	}

	logging.Logger.Info("Session created and agent started", "name", name)
	return true, nil
}

// DestroySession kills the session. Returns false with a nil error when it
// did not exist.
func (c *DefaultClient) DestroySession(name string) (bool, error) {
	if !c.SessionExists(name) {
		return false, nil
	}

	cmd := exec.Command("tmux", "kill-session", "-t", name)
	if output, err := cmd.CombinedOutput(); err != nil {
		return false, fmt.Errorf("failed to destroy tmux session: %w\nOutput: %s", err, string(output))
	}

	logging.Logger.Info("Session destroyed", "name", name)
	return true, nil
}

// SessionExists checks if the tmux session (or pane target) exists
func (c *DefaultClient) SessionExists(name string) bool {
	cmd := exec.Command("tmux", "has-session", "-t", name)
	return cmd.Run() == nil
}

// ListSessions returns all active tmux session names
func (c *DefaultClient) ListSessions() ([]string, error) {
	cmd := exec.Command("tmux", "ls", "-F", "#{session_name}")
	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means no server or no sessions
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list tmux sessions: %w", err)
	}

	var sessions []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sessions = append(sessions, line)
		}
	}

	return sessions, nil
}

// AttachCommand returns the shell command the caller must run to attach.
// This process cannot change its parent shell, so the command is handed
// back for the caller's own shell to execute.
func (c *DefaultClient) AttachCommand(name string) (string, error) {
	if !c.SessionExists(name) {
		return "", fmt.Errorf("%w: %s", ports.ErrTmuxSessionNotFound, name)
	}
	return fmt.Sprintf("tmux attach-session -t %s", shellQuote(name)), nil
}

// Attach attaches to the tmux session through a pty. Returns a channel that
// is closed when detached. Ctrl+Q detaches.
func (c *DefaultClient) Attach(name string) (chan struct{}, error) {
	c.mu.Lock()
	state, exists := c.attachedSessions[name]
	if !exists {
		state = &attachmentState{}
		c.attachedSessions[name] = state
	}
	c.mu.Unlock()

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.attachCh != nil {
		return nil, ports.ErrTmuxAlreadyAttached
	}

	cmd := exec.Command("tmux", "attach-session", "-t", name)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to session: %w", err)
	}

	state.ptmx = ptmx
	state.attachCh = make(chan struct{})

	go func() {
		io.Copy(os.Stdout, ptmx)
	}()

	// Forward stdin to tmux, watching for Ctrl+Q (ASCII 17) to detach
	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				break
			}

			for i := 0; i < n; i++ {
				if buf[i] == 17 {
					c.Detach(name)
					return
				}
			}

			ptmx.Write(buf[:n])
		}
	}()

	return state.attachCh, nil
}

// Detach detaches from the tmux session
func (c *DefaultClient) Detach(name string) error {
	c.mu.Lock()
	state, exists := c.attachedSessions[name]
	c.mu.Unlock()

	if !exists {
		return ports.ErrTmuxNotAttached
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.attachCh == nil {
		return ports.ErrTmuxNotAttached
	}

	if state.ptmx != nil {
		state.ptmx.Close()
		state.ptmx = nil
	}

	close(state.attachCh)
	state.attachCh = nil

	return nil
}

// CapturePaneToFile captures the agent pane's full scrollback to the
// session capture file and returns its path. Returns an empty path with a
// nil error when the pane no longer exists.
func (c *DefaultClient) CapturePaneToFile(name string) (string, error) {
	target := paneTarget(name)

	if !c.SessionExists(target) {
		return "", nil
	}

	cmd := exec.Command("tmux", "capture-pane", "-pJ", "-S", "-", "-t", target)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to capture tmux pane content: %w\nOutput: %s", err, string(output))
	}

	cmd = exec.Command("tmux", "save-buffer", "-", "-t", target)
	content, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to save tmux buffer: %w", err)
	}

	captureDir := config.SessionsDir()
	if err := os.MkdirAll(captureDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create capture directory: %w", err)
	}

	captureFile := filepath.Join(captureDir, name+".txt")
	if err := os.WriteFile(captureFile, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write capture file: %w", err)
	}

	logging.Logger.Info("Captured pane content", "session", name, "file", captureFile)
	return captureFile, nil
}

// SendKeys sends keystrokes to the given session or pane target
func (c *DefaultClient) SendKeys(name string, keys ...string) error {
	args := []string{"send-keys", "-t", name}
	args = append(args, keys...)
	cmd := exec.Command("tmux", args...)
	return cmd.Run()
}

// shellQuote quotes a string for safe interpolation into a shell command.
// Names made of safe characters pass through unchanged.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}

	safe := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '/', r == '@', r == ':':
		default:
			safe = false
		}
		if !safe {
			break
		}
	}
	if safe {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
