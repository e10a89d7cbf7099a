package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/services"
	"workspace/internal/theme"
)

// pollTimeout bounds one full dashboard refresh
const pollTimeout = 10 * time.Second

// flashDuration is how long a completion announcement stays on screen
const flashDuration = 30 * time.Second

// Poller produces one dashboard refresh. The watch command polls with
// persistence; serve polls read-only.
type Poller interface {
	Poll(ctx context.Context) (*PollResult, error)
}

// PollResult is one refresh of the dashboard
type PollResult struct {
	Completed []*domain.Workspace // freshly completed on this sweep
	Statuses  []services.WorkspaceStatus
}

type pollDoneMsg struct {
	result *PollResult
}

type pollErrMsg struct {
	err error
}

type pollTickMsg struct{}

// WatchModel is the workspace dashboard: one status table refreshed on a
// timer, with completion announcements. Read-only; all mutation happens in
// the poller.
type WatchModel struct {
	err      error
	flash    string
	flashAt  time.Time
	height   int
	interval time.Duration
	poller   Poller
	polling  bool
	rows     []services.WorkspaceStatus
	spinner  spinner.Model
	width    int
}

// NewWatchModel creates the dashboard model refreshing through poller every interval
func NewWatchModel(poller Poller, interval time.Duration) *WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	return &WatchModel{
		interval: interval,
		poller:   poller,
		spinner:  sp,
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollCmd())
}

// pollCmd runs one refresh off the update loop
func (m *WatchModel) pollCmd() tea.Cmd {
	m.polling = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()

		result, err := m.poller.Poll(ctx)
		if err != nil {
			return pollErrMsg{err: err}
		}
		return pollDoneMsg{result: result}
	}
}

// scheduleTick queues the next refresh
func (m *WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.polling {
				return m, m.pollCmd()
			}
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

	case pollTickMsg:
		if m.polling {
			// Previous refresh still in flight, try again next tick
			return m, m.scheduleTick()
		}
		return m, m.pollCmd()

	case pollDoneMsg:
		m.err = nil
		m.polling = false
		m.rows = msg.result.Statuses
		if len(msg.result.Completed) > 0 {
			m.flash = completionFlash(msg.result.Completed)
			m.flashAt = time.Now()
		}
		return m, m.scheduleTick()

	case pollErrMsg:
		m.err = msg.err
		m.polling = false
		logging.Logger.Warn("Dashboard refresh failed", "error", msg.err)
		return m, m.scheduleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *WatchModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Workspaces"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(theme.ErrorStyle.Render("refresh failed: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(renderStatusTable(m.rows))

	if m.flash != "" && time.Since(m.flashAt) < flashDuration {
		b.WriteString("\n")
		b.WriteString(theme.FlashStyle.Render(m.flash))
	}

	footer := "r refresh  q quit"
	if m.polling {
		footer = m.spinner.View() + " refreshing   " + footer
	}
	b.WriteString(theme.HelpStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}
