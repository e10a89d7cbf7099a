package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"workspace/internal/adapters/git"
	"workspace/internal/adapters/process"
	"workspace/internal/adapters/storage"
	"workspace/internal/adapters/tmux"
	"workspace/internal/logging"
	"workspace/internal/ports"
	"workspace/internal/services"
	"workspace/internal/ui"
)

// readOnlyPoller refreshes the dashboard without persisting observations.
// Remote viewers never advance process state or trigger captures.
type readOnlyPoller struct {
	statuses *services.StatusService
	store    ports.RegistryStore
}

func (p *readOnlyPoller) Poll(ctx context.Context) (*ui.PollResult, error) {
	reg, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &ui.PollResult{Statuses: p.statuses.Snapshot(ctx, reg, true)}, nil
}

// sessionModel wraps the dashboard model to close the per-session store on quit
type sessionModel struct {
	*ui.WatchModel
	sessionID string
	startTime time.Time
	store     ports.RegistryStore
}

func (s *sessionModel) Init() tea.Cmd {
	return s.WatchModel.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.store.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err, "session_id", s.sessionID, "duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID, "duration", duration.String())
	}

	updatedModel, cmd := s.WatchModel.Update(msg)
	if m, ok := updatedModel.(*ui.WatchModel); ok {
		s.WatchModel = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.WatchModel.View()
}

// teaHandler creates a dashboard model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	store, err := storage.NewSQLiteStore(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	tmuxClient := tmux.NewClient()
	monitor := services.NewMonitorService(tmuxClient, process.NewOSProcessInspector())
	statuses := services.NewStatusService(git.NewCLIClient(), monitor)

	poller := &readOnlyPoller{
		statuses: statuses,
		store:    store,
	}

	model := &sessionModel{
		WatchModel: ui.NewWatchModel(poller, s.interval),
		sessionID:  sessionID,
		startTime:  time.Now(),
		store:      store,
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
