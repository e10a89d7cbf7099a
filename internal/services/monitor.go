package services

import (
	"fmt"
	"strings"
	"time"

	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// agentPane is the pane index the agent runs in; pane 0 is the plain shell.
const agentPane = 1

// agentProcessName identifies the agent among a pane's child processes
const agentProcessName = "claude"

// MonitorService classifies the agent process inside a workspace's tmux
// session and advances the workspace's persisted process status.
//
// Polling is caller-driven; there is no scheduler here. Concurrent polls
// against the same session are not safe and must be serialized by the caller.
type MonitorService struct {
	inspector ports.ProcessInspector
	tmux      ports.TmuxClient
}

// NewMonitorService creates a new MonitorService
func NewMonitorService(tmux ports.TmuxClient, inspector ports.ProcessInspector) *MonitorService {
	return &MonitorService{
		inspector: inspector,
		tmux:      tmux,
	}
}

// Observe classifies the agent's current state in the workspace's session
// without mutating the workspace.
func (s *MonitorService) Observe(ws *domain.Workspace) (domain.ObservedStatus, error) {
	if ws.TmuxSession == "" || !s.tmux.SessionExists(ws.TmuxSession) {
		return domain.ObservedAbsent, nil
	}

	procs, err := s.inspector.PaneProcesses(ws.TmuxSession, agentPane)
	if err != nil {
		return "", fmt.Errorf("failed to inspect agent pane: %w", err)
	}

	var agent *ports.PaneProcess
	for i := range procs {
		if strings.Contains(procs[i].Command, agentProcessName) {
			agent = &procs[i]
			break
		}
	}

	if agent == nil {
		// Pane is alive but the agent is gone: it exited normally
		return domain.ObservedCompleted, nil
	}

	switch {
	case strings.HasPrefix(agent.State, "S"):
		return domain.ObservedStopped, nil
	case strings.HasPrefix(agent.State, "R"):
		return domain.ObservedRunning, nil
	default:
		return domain.ObservedOther, nil
	}
}

// UpdateStatus observes the workspace's agent and applies the observation to
// its persisted process state:
//
//   - running: status becomes RUNNING; start_time is stamped on the first
//     running observation only.
//   - completed: pane output is captured exactly once, at the RUNNING to
//     COMPLETED transition (capture failures are swallowed); end_time is
//     stamped if unset and the exit code recorded as zero.
//   - absent: only a RUNNING process fails; the session disappearing before
//     or after a run changes nothing.
//   - stopped and other observations change nothing: a sleeping agent is
//     still an active agent.
func (s *MonitorService) UpdateStatus(ws *domain.Workspace) (domain.ObservedStatus, error) {
	obs, err := s.Observe(ws)
	if err != nil {
		return "", err
	}

	now := time.Now()
	p := &ws.ClaudeProcess

	switch obs {
	case domain.ObservedRunning:
		p.Status = domain.ProcessRunning
		if p.StartTime == nil {
			p.StartTime = &now
		}

	case domain.ObservedCompleted:
		if p.Status == domain.ProcessRunning {
			if path, err := s.tmux.CapturePaneToFile(ws.TmuxSession); err != nil {
				logging.Logger.Warn("Failed to capture agent output", "session", ws.TmuxSession, "error", err)
			} else if path != "" {
				p.ResultFile = path
			}
		}
		p.Status = domain.ProcessCompleted
		if p.EndTime == nil {
			p.EndTime = &now
		}
		exitCode := 0
		p.ExitCode = &exitCode

	case domain.ObservedAbsent:
		if p.Status == domain.ProcessRunning {
			p.Status = domain.ProcessFailed
			p.EndTime = &now
			p.ErrorMessage = "Session terminated unexpectedly"
			logging.Logger.Warn("Agent session terminated unexpectedly",
				"workspace", ws.Name, "session", ws.TmuxSession)
		}
	}

	return obs, nil
}

// CheckCompleted polls every registered workspace that has a session and
// returns the ones whose agent was freshly observed as completed on this
// pass. Workspaces already recorded as completed are not reported again.
func (s *MonitorService) CheckCompleted(reg *domain.Registry) []*domain.Workspace {
	var completed []*domain.Workspace

	for _, ws := range reg.Workspaces {
		if ws.TmuxSession == "" {
			continue
		}

		prev := ws.ClaudeProcess.Status
		obs, err := s.UpdateStatus(ws)
		if err != nil {
			logging.Logger.Warn("Status update failed", "workspace", ws.Name, "error", err)
			continue
		}

		if obs == domain.ObservedCompleted && prev != domain.ProcessCompleted {
			completed = append(completed, ws)
		}
	}

	return completed
}
