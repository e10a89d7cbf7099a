package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"workspace/internal/config"
	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// WorkspaceService implements the workspace lifecycle: worktree allocation,
// session creation, infrastructure start/stop, and teardown.
type WorkspaceService struct {
	plans     ports.PlanStore
	runner    ports.CommandRunner
	tmux      ports.TmuxClient
	worktrees ports.WorktreeManager
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(
	worktrees ports.WorktreeManager,
	tmux ports.TmuxClient,
	runner ports.CommandRunner,
	plans ports.PlanStore,
) *WorkspaceService {
	return &WorkspaceService{
		plans:     plans,
		runner:    runner,
		tmux:      tmux,
		worktrees: worktrees,
	}
}

// CreateOptions control workspace allocation
type CreateOptions struct {
	// BaseBranch forks the worktree branch from the named branch instead of HEAD
	BaseBranch string
	// InitialPrompt seeds the agent pane when non-empty
	InitialPrompt string
	// ReuseWorktree repurposes an orphaned worktree of the project when one exists
	ReuseWorktree bool
	// WorktreeName forces the worktree (and branch) name instead of generating one
	WorktreeName string
}

// Create allocates a worktree, creates the tmux session, and registers the
// workspace. Session creation failure is non-fatal: the workspace proceeds
// without a session and the worktree is never rolled back.
func (s *WorkspaceService) Create(reg *domain.Registry, project *domain.Project, name string, opts CreateOptions) (*domain.Workspace, error) {
	if existing := reg.WorkspaceByName(project.Name, name); existing != nil {
		return nil, fmt.Errorf("workspace %s in project %s: %w", name, project.Name, domain.ErrWorkspaceExists)
	}

	logging.Logger.Info("Creating workspace", "project", project.Name, "name", name)

	worktreeName := opts.WorktreeName
	worktreePath := ""

	if worktreeName == "" && opts.ReuseWorktree {
		worktreeName, worktreePath = s.findUnusedWorktree(reg, project)
		if worktreePath != "" {
			logging.Logger.Info("Reusing orphaned worktree", "worktree", worktreeName, "path", worktreePath)
		}
	}

	if worktreeName == "" {
		worktreeName = petname.Generate(2, "-")
	}

	if worktreePath == "" {
		worktreesDir := filepath.Join(filepath.Dir(project.Root), "worktrees")
		worktreePath = filepath.Join(worktreesDir, project.Name+"-"+worktreeName)
		if err := os.MkdirAll(worktreesDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create workspace: %w", err)
		}
		// The worktree name doubles as the branch name, decoupling the
		// branch from the workspace display name.
		if err := s.worktrees.CreateWorktree(project.Root, worktreePath, worktreeName, opts.BaseBranch); err != nil {
			return nil, fmt.Errorf("failed to create workspace: %w", err)
		}
	}

	sessionName := project.Name + "-" + worktreeName
	tmuxSession := ""
	if _, err := s.tmux.CreateSession(sessionName, worktreePath, opts.InitialPrompt); err != nil {
		logging.Logger.Warn("Session creation failed, continuing without session",
			"session", sessionName, "error", err)
	} else {
		tmuxSession = sessionName
	}

	ws := &domain.Workspace{
		ClaudeProcess: domain.NewClaudeProcess(),
		Name:          name,
		Path:          worktreePath,
		Project:       project.Name,
		Started:       false,
		TmuxSession:   tmuxSession,
		WorktreeName:  worktreeName,
	}

	if opts.InitialPrompt != "" && tmuxSession != "" {
		now := time.Now()
		ws.ClaudeProcess.Status = domain.ProcessRunning
		ws.ClaudeProcess.StartTime = &now
	}

	reg.AddWorkspace(ws)

	logging.Logger.Info("Workspace created",
		"project", project.Name, "name", name, "worktree", worktreeName, "session", tmuxSession)
	return ws, nil
}

// findUnusedWorktree looks for a worktree of the project that no active
// workspace holds. Returns empty strings when none qualifies; listing or
// filesystem errors just mean a fresh worktree gets created instead.
func (s *WorkspaceService) findUnusedWorktree(reg *domain.Registry, project *domain.Project) (string, string) {
	worktreesDir := filepath.Join(filepath.Dir(project.Root), "worktrees")
	if _, err := os.Stat(worktreesDir); err != nil {
		return "", ""
	}

	worktrees, err := s.worktrees.ListWorktrees(project.Root)
	if err != nil {
		logging.Logger.Debug("Worktree listing failed, allocating fresh", "error", err)
		return "", ""
	}

	activePaths := reg.WorkspacePaths()
	prefix := project.Name + "-"
	for _, wt := range worktrees {
		base := filepath.Base(wt.Path)
		if !strings.HasPrefix(base, prefix) {
			continue
		}
		if activePaths[wt.Path] {
			continue
		}
		return strings.TrimPrefix(base, prefix), wt.Path
	}

	return "", ""
}

// Destroy tears a workspace down: stops infrastructure when started, removes
// the worktree, kills the session, back-propagates into referencing tasks,
// and deregisters the workspace. force discards local changes in the worktree.
func (s *WorkspaceService) Destroy(reg *domain.Registry, ws *domain.Workspace, force bool) error {
	logging.Logger.Info("Destroying workspace", "project", ws.Project, "name", ws.Name, "force", force)

	if ws.Started {
		if err := s.Stop(reg, ws); err != nil {
			return err
		}
	}

	project, err := reg.ProjectFor(ws)
	if err != nil {
		return fmt.Errorf("workspace %s: %w", ws.Name, err)
	}

	if err := s.worktrees.RemoveWorktree(project.Root, ws.Path, force); err != nil {
		return fmt.Errorf("failed to destroy workspace: %w", err)
	}

	if ws.TmuxSession != "" {
		if _, err := s.tmux.DestroySession(ws.TmuxSession); err != nil {
			logging.Logger.Warn("Failed to destroy tmux session", "session", ws.TmuxSession, "error", err)
		}
	}

	for _, task := range reg.DetachWorkspace(ws) {
		if _, err := s.plans.SavePlan(task); err != nil {
			logging.Logger.Warn("Failed to update task plan", "task", task.ID, "error", err)
		}
	}

	// git worktree remove already deletes the directory; this mops up
	// leftovers from forced or partial removals.
	if err := os.RemoveAll(ws.Path); err != nil {
		return fmt.Errorf("failed to destroy workspace: %w", err)
	}

	reg.RemoveWorkspace(ws)

	logging.Logger.Info("Workspace destroyed", "project", ws.Project, "name", ws.Name)
	return nil
}

// Start runs the project's infrastructure start command in the workspace directory
func (s *WorkspaceService) Start(reg *domain.Registry, ws *domain.Workspace) error {
	pf, err := s.projectConfig(reg, ws)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting workspace infrastructure",
		"workspace", ws.Name, "command", pf.Infrastructure.Start)

	output, err := s.runner.RunShell(ws.Path, pf.Infrastructure.Start)
	if err != nil {
		return fmt.Errorf("failed to start workspace infrastructure: %w\nOutput: %s", err, output)
	}

	ws.Started = true
	return nil
}

// Stop runs the project's infrastructure stop command in the workspace directory
func (s *WorkspaceService) Stop(reg *domain.Registry, ws *domain.Workspace) error {
	pf, err := s.projectConfig(reg, ws)
	if err != nil {
		return err
	}

	logging.Logger.Info("Stopping workspace infrastructure",
		"workspace", ws.Name, "command", pf.Infrastructure.Stop)

	output, err := s.runner.RunShell(ws.Path, pf.Infrastructure.Stop)
	if err != nil {
		return fmt.Errorf("failed to stop workspace infrastructure: %w\nOutput: %s", err, output)
	}

	ws.Started = false
	return nil
}

func (s *WorkspaceService) projectConfig(reg *domain.Registry, ws *domain.Workspace) (*config.ProjectFile, error) {
	project, err := reg.ProjectFor(ws)
	if err != nil {
		return nil, fmt.Errorf("workspace %s: %w", ws.Name, err)
	}

	pf, err := config.LoadProjectFile(project.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	return pf, nil
}

// Run executes argv in the workspace directory with the caller's terminal attached
func (s *WorkspaceService) Run(ws *domain.Workspace, argv []string) error {
	logging.Logger.Info("Running command in workspace", "workspace", ws.Name, "command", strings.Join(argv, " "))

	if err := s.runner.RunInteractive(ws.Path, argv); err != nil {
		return fmt.Errorf("failed to run command in workspace: %w", err)
	}
	return nil
}

// Switch verifies the workspace directory exists and returns the attach
// command for its session, recreating the session when it has gone away. A
// workspace whose session cannot be recreated loses the association and an
// empty command is returned.
func (s *WorkspaceService) Switch(ws *domain.Workspace) (string, error) {
	if _, err := os.Stat(ws.Path); err != nil {
		return "", fmt.Errorf("workspace directory does not exist: %s", ws.Path)
	}

	if ws.TmuxSession != "" && !s.tmux.SessionExists(ws.TmuxSession) {
		if _, err := s.tmux.CreateSession(ws.TmuxSession, ws.Path, ""); err != nil {
			logging.Logger.Warn("Failed to recreate session, clearing association",
				"session", ws.TmuxSession, "error", err)
			ws.TmuxSession = ""
		}
	}

	if ws.TmuxSession == "" {
		return "", nil
	}

	return s.tmux.AttachCommand(ws.TmuxSession)
}

// AttachCommand returns the shell command that attaches to the workspace's session
func (s *WorkspaceService) AttachCommand(ws *domain.Workspace) (string, error) {
	if ws.TmuxSession == "" {
		return "", fmt.Errorf("workspace %s has no tmux session", ws.Name)
	}
	return s.tmux.AttachCommand(ws.TmuxSession)
}

// Attach attaches the caller's terminal to the workspace's session through a
// pty. The returned channel closes on detach.
func (s *WorkspaceService) Attach(ws *domain.Workspace) (chan struct{}, error) {
	if ws.TmuxSession == "" {
		return nil, fmt.Errorf("workspace %s has no tmux session", ws.Name)
	}
	return s.tmux.Attach(ws.TmuxSession)
}
