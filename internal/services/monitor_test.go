package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace/internal/domain"
	"workspace/internal/ports"
	portsmocks "workspace/internal/ports/mocks"
)

func TestObserve_AgentStateMapping(t *testing.T) {
	tests := []struct {
		name          string
		sessionExists bool
		procs         []ports.PaneProcess
		expected      domain.ObservedStatus
	}{
		{
			name:          "running agent",
			sessionExists: true,
			procs: []ports.PaneProcess{
				{Command: "claude --continue", PID: 4242, State: "R+"},
			},
			expected: domain.ObservedRunning,
		},
		{
			name:          "sleeping agent",
			sessionExists: true,
			procs: []ports.PaneProcess{
				{Command: "claude", PID: 4242, State: "Ss+"},
			},
			expected: domain.ObservedStopped,
		},
		{
			name:          "zombie agent",
			sessionExists: true,
			procs: []ports.PaneProcess{
				{Command: "claude", PID: 4242, State: "Z"},
			},
			expected: domain.ObservedOther,
		},
		{
			name:          "agent exited, pane alive",
			sessionExists: true,
			procs: []ports.PaneProcess{
				{Command: "vim notes.md", PID: 4243, State: "S+"},
			},
			expected: domain.ObservedCompleted,
		},
		{
			name:          "empty pane",
			sessionExists: true,
			procs:         []ports.PaneProcess{},
			expected:      domain.ObservedCompleted,
		},
		{
			name:          "session gone",
			sessionExists: false,
			expected:      domain.ObservedAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmux := portsmocks.NewMockTmuxClient(t)
			inspector := portsmocks.NewMockProcessInspector(t)

			tmux.EXPECT().SessionExists("api-old-fox").Return(tt.sessionExists)
			if tt.sessionExists {
				inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return(tt.procs, nil)
			}

			service := NewMonitorService(tmux, inspector)
			ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}

			obs, err := service.Observe(ws)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, obs)
		})
	}
}

func TestObserve_NoSessionAssociation(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api"}

	obs, err := service.Observe(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ObservedAbsent, obs)
}

func TestObserve_InspectorFailure(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return(nil, errors.New("ps: not found"))

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}

	_, err := service.Observe(ws)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to inspect agent pane")
}

func TestUpdateStatus_RunningStampsStartTimeOnce(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return([]ports.PaneProcess{
		{Command: "claude", PID: 4242, State: "R+"},
	}, nil)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	ws.ClaudeProcess = domain.NewClaudeProcess()

	_, err := service.UpdateStatus(ws)
	require.NoError(t, err)
	require.NotNil(t, ws.ClaudeProcess.StartTime)
	first := *ws.ClaudeProcess.StartTime

	_, err = service.UpdateStatus(ws)
	require.NoError(t, err)

	assert.Equal(t, domain.ProcessRunning, ws.ClaudeProcess.Status)
	assert.Equal(t, first, *ws.ClaudeProcess.StartTime)
}

func TestUpdateStatus_CapturesOutputOnCompletion(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return([]ports.PaneProcess{}, nil)
	tmux.EXPECT().CapturePaneToFile("api-old-fox").Return("/tmp/captures/api-old-fox.txt", nil).Once()

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	start := time.Now().Add(-time.Minute)
	ws.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	obs, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ObservedCompleted, obs)
	assert.Equal(t, domain.ProcessCompleted, ws.ClaudeProcess.Status)
	assert.Equal(t, "/tmp/captures/api-old-fox.txt", ws.ClaudeProcess.ResultFile)
	require.NotNil(t, ws.ClaudeProcess.EndTime)
	require.NotNil(t, ws.ClaudeProcess.ExitCode)
	assert.Equal(t, 0, *ws.ClaudeProcess.ExitCode)
	firstEnd := *ws.ClaudeProcess.EndTime

	// A second completed observation must not capture again or move end_time
	_, err = service.UpdateStatus(ws)
	require.NoError(t, err)
	assert.Equal(t, firstEnd, *ws.ClaudeProcess.EndTime)
}

func TestUpdateStatus_CaptureFailureStillCompletes(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return([]ports.PaneProcess{}, nil)
	tmux.EXPECT().CapturePaneToFile("api-old-fox").Return("", errors.New("no server running"))

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	start := time.Now()
	ws.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	_, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ProcessCompleted, ws.ClaudeProcess.Status)
	assert.Empty(t, ws.ClaudeProcess.ResultFile)
}

func TestUpdateStatus_CompletionWithoutPriorRunSkipsCapture(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return([]ports.PaneProcess{}, nil)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	ws.ClaudeProcess = domain.NewClaudeProcess()

	_, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ProcessCompleted, ws.ClaudeProcess.Status)
	assert.Empty(t, ws.ClaudeProcess.ResultFile)
}

func TestUpdateStatus_SleepingAgentChangesNothing(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(true)
	inspector.EXPECT().PaneProcesses("api-old-fox", 1).Return([]ports.PaneProcess{
		{Command: "claude", PID: 4242, State: "Ss"},
	}, nil)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	start := time.Now()
	ws.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	obs, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ObservedStopped, obs)
	assert.Equal(t, domain.ProcessRunning, ws.ClaudeProcess.Status)
	assert.Nil(t, ws.ClaudeProcess.EndTime)
}

func TestUpdateStatus_AbsentFailsRunningAgent(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(false)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	start := time.Now()
	ws.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	_, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ProcessFailed, ws.ClaudeProcess.Status)
	assert.Equal(t, "Session terminated unexpectedly", ws.ClaudeProcess.ErrorMessage)
	assert.NotNil(t, ws.ClaudeProcess.EndTime)
}

func TestUpdateStatus_AbsentBeforeStartIsIgnored(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	tmux.EXPECT().SessionExists("api-old-fox").Return(false)

	service := NewMonitorService(tmux, inspector)
	ws := &domain.Workspace{Name: "alpha", Project: "api", TmuxSession: "api-old-fox"}
	ws.ClaudeProcess = domain.NewClaudeProcess()

	_, err := service.UpdateStatus(ws)

	require.NoError(t, err)
	assert.Equal(t, domain.ProcessNotStarted, ws.ClaudeProcess.Status)
}

func TestCheckCompleted_ReportsFreshCompletionsOnly(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	sessionless := &domain.Workspace{Name: "no-session", Project: "api"}

	start := time.Now()
	fresh := &domain.Workspace{Name: "fresh", Project: "api", TmuxSession: "api-fresh"}
	fresh.ClaudeProcess = domain.ClaudeProcess{Status: domain.ProcessRunning, StartTime: &start}

	stale := &domain.Workspace{Name: "stale", Project: "api", TmuxSession: "api-stale"}
	end := start.Add(time.Minute)
	exit := 0
	stale.ClaudeProcess = domain.ClaudeProcess{
		EndTime:   &end,
		ExitCode:  &exit,
		StartTime: &start,
		Status:    domain.ProcessCompleted,
	}

	tmux.EXPECT().SessionExists("api-fresh").Return(true)
	inspector.EXPECT().PaneProcesses("api-fresh", 1).Return([]ports.PaneProcess{}, nil)
	tmux.EXPECT().CapturePaneToFile("api-fresh").Return("/tmp/captures/api-fresh.txt", nil)

	tmux.EXPECT().SessionExists("api-stale").Return(true)
	inspector.EXPECT().PaneProcesses("api-stale", 1).Return([]ports.PaneProcess{}, nil)

	service := NewMonitorService(tmux, inspector)
	reg := &domain.Registry{Workspaces: []*domain.Workspace{sessionless, fresh, stale}}

	completed := service.CheckCompleted(reg)

	require.Len(t, completed, 1)
	assert.Same(t, fresh, completed[0])
	assert.Equal(t, domain.ProcessCompleted, fresh.ClaudeProcess.Status)
}

func TestCheckCompleted_PollFailureSkipsWorkspace(t *testing.T) {
	tmux := portsmocks.NewMockTmuxClient(t)
	inspector := portsmocks.NewMockProcessInspector(t)

	broken := &domain.Workspace{Name: "broken", Project: "api", TmuxSession: "api-broken"}
	broken.ClaudeProcess = domain.NewClaudeProcess()

	tmux.EXPECT().SessionExists("api-broken").Return(true)
	inspector.EXPECT().PaneProcesses("api-broken", 1).Return(nil, errors.New("ps: not found"))

	service := NewMonitorService(tmux, inspector)
	reg := &domain.Registry{Workspaces: []*domain.Workspace{broken}}

	completed := service.CheckCompleted(reg)

	assert.Empty(t, completed)
	assert.Equal(t, domain.ProcessNotStarted, broken.ClaudeProcess.Status)
}
