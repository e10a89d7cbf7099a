package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workspace/internal/domain"
	"workspace/internal/ports"
	portsmocks "workspace/internal/ports/mocks"
)

func TestSnapshot(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)
	git := portsmocks.NewMockGitStatsProvider(t)

	active := &domain.Workspace{Name: "active", Project: "api", TmuxSession: "api-active"}
	sessionless := &domain.Workspace{Name: "bare", Project: "api"}
	reg := &domain.Registry{Workspaces: []*domain.Workspace{active, sessionless}}

	tmux.EXPECT().SessionExists("api-active").Return(true)
	inspector.EXPECT().PaneProcesses("api-active", 1).Return([]ports.PaneProcess{
		{Command: "claude", PID: 4242, State: "R+"},
	}, nil)

	service := NewStatusService(git, NewMonitorService(tmux, inspector))

	rows := service.Snapshot(context.Background(), reg, false)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.ObservedRunning, rows[0].Observed)
	assert.Equal(t, domain.ObservedAbsent, rows[1].Observed)
	assert.Nil(t, rows[0].Stats)
	// Snapshot never advances persisted state
	assert.Equal(t, domain.ProcessStatus(""), active.ClaudeProcess.Status)
}

func TestSnapshot_WithStats(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)
	git := portsmocks.NewMockGitStatsProvider(t)

	ws := &domain.Workspace{Name: "alpha", Project: "api", Path: "/worktrees/api-old-fox"}
	reg := &domain.Registry{Workspaces: []*domain.Workspace{ws}}

	stats := &domain.GitStats{Ahead: 2, Behind: 1, ChangedFiles: 3, FetchedAt: time.Now()}
	git.EXPECT().FetchGitStats(mock.Anything, "/worktrees/api-old-fox").Return(stats, nil)

	service := NewStatusService(git, NewMonitorService(tmux, inspector))

	rows := service.Snapshot(context.Background(), reg, true)

	require.Len(t, rows, 1)
	assert.Same(t, stats, rows[0].Stats)
}

func TestSnapshot_StatsFailureLeavesRowBare(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)
	git := portsmocks.NewMockGitStatsProvider(t)

	ws := &domain.Workspace{Name: "alpha", Project: "api", Path: "/worktrees/api-old-fox"}
	reg := &domain.Registry{Workspaces: []*domain.Workspace{ws}}

	git.EXPECT().FetchGitStats(mock.Anything, "/worktrees/api-old-fox").
		Return(nil, errors.New("not a git repository"))

	service := NewStatusService(git, NewMonitorService(tmux, inspector))

	rows := service.Snapshot(context.Background(), reg, true)

	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Stats)
}

func TestSweep_ReportsFreshCompletions(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)
	git := portsmocks.NewMockGitStatsProvider(t)

	start := time.Now().Add(-time.Minute)
	fresh := &domain.Workspace{Name: "fresh", Project: "api", TmuxSession: "api-fresh"}
	fresh.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	exit := 0
	stale := &domain.Workspace{Name: "stale", Project: "api", TmuxSession: "api-stale"}
	stale.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessCompleted, ExitCode: &exit}

	sessionless := &domain.Workspace{Name: "bare", Project: "api"}
	reg := &domain.Registry{Workspaces: []*domain.Workspace{fresh, stale, sessionless}}

	tmux.EXPECT().SessionExists("api-fresh").Return(true)
	inspector.EXPECT().PaneProcesses("api-fresh", 1).Return([]ports.PaneProcess{}, nil)
	tmux.EXPECT().CapturePaneToFile("api-fresh").Return("/tmp/captures/api-fresh.txt", nil)

	tmux.EXPECT().SessionExists("api-stale").Return(true)
	inspector.EXPECT().PaneProcesses("api-stale", 1).Return([]ports.PaneProcess{}, nil)

	service := NewStatusService(git, NewMonitorService(tmux, inspector))

	rows, completed := service.Sweep(context.Background(), reg, false)

	require.Len(t, rows, 3)
	assert.Equal(t, domain.ObservedCompleted, rows[0].Observed)
	assert.Equal(t, domain.ObservedCompleted, rows[1].Observed)
	assert.Equal(t, domain.ObservedStatus(""), rows[2].Observed)

	require.Len(t, completed, 1)
	assert.Same(t, fresh, completed[0])
	assert.Equal(t, domain.ProcessCompleted, fresh.ClaudeProcess.Status)
}
