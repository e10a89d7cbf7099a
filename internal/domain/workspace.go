package domain

import "time"

// ProcessStatus is the lifecycle state of the agent process inside a workspace session
type ProcessStatus string

const (
	ProcessNotStarted ProcessStatus = "not_started"
	ProcessRunning    ProcessStatus = "running"
	ProcessCompleted  ProcessStatus = "completed"
	ProcessFailed     ProcessStatus = "failed"
)

// ClaudeProcess tracks the agent process running in a workspace's session pane.
// EndTime is set exactly when the status reaches completed or failed; ExitCode
// is meaningful only for completed.
type ClaudeProcess struct {
	EndTime      *time.Time
	ErrorMessage string
	ExitCode     *int
	ResultFile   string
	StartTime    *time.Time
	Status       ProcessStatus
}

// Workspace is a managed working copy of a project: one git worktree, at most
// one tmux session. The path invariant is
// {project root parent}/worktrees/{project}-{worktree name}.
type Workspace struct {
	ClaudeProcess ClaudeProcess
	Name          string // display name, distinct namespace from WorktreeName
	Path          string
	Project       string // owning project name
	Started       bool   // infrastructure started
	TmuxSession   string // empty when session creation failed or was skipped
	WorktreeName  string // directory suffix and branch name
}

// NewClaudeProcess returns a process record in its initial state
func NewClaudeProcess() ClaudeProcess {
	return ClaudeProcess{Status: ProcessNotStarted}
}

// ObservedStatus is a point-in-time observation of the agent pane, as
// opposed to ProcessStatus which is the persisted lifecycle state derived
// from successive observations.
type ObservedStatus string

const (
	// ObservedRunning means the agent process is in the R state
	ObservedRunning ObservedStatus = "running"
	// ObservedStopped means the agent process is sleeping (S state)
	ObservedStopped ObservedStatus = "stopped"
	// ObservedCompleted means the pane exists but the agent process is gone
	ObservedCompleted ObservedStatus = "completed"
	// ObservedOther covers remaining process states (T, Z, ...)
	ObservedOther ObservedStatus = "other"
	// ObservedAbsent means the session no longer exists
	ObservedAbsent ObservedStatus = "absent"
)
