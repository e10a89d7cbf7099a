package services

import (
	"context"
	"fmt"

	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// TaskService drives the task lifecycle: agent-assisted planning, plan
// confirmation, subtask execution against workspaces, and cancellation.
type TaskService struct {
	planner    ports.TaskPlanner
	plans      ports.PlanStore
	tmux       ports.TmuxClient
	workspaces *WorkspaceService
}

// NewTaskService creates a new TaskService
func NewTaskService(
	planner ports.TaskPlanner,
	plans ports.PlanStore,
	tmux ports.TmuxClient,
	workspaces *WorkspaceService,
) *TaskService {
	return &TaskService{
		planner:    planner,
		plans:      plans,
		tmux:       tmux,
		workspaces: workspaces,
	}
}

// CreatePlan runs the planning agent against the project and writes the plan
// file for review. The task stays out of the registry until confirmed.
// Returns the task and the plan file path.
func (s *TaskService) CreatePlan(ctx context.Context, project *domain.Project, description, agentCommand string) (*domain.Task, string, error) {
	task, err := s.planner.AnalyzeTask(ctx, project, description, agentCommand)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create task plan: %w", err)
	}

	path, err := s.plans.SavePlan(task)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create task plan: %w", err)
	}

	logging.Logger.Info("Task plan created", "task", task.ID, "plan", path)
	return task, path, nil
}

// LoadPlan reads a plan file by task id, confirmed or not
func (s *TaskService) LoadPlan(id string) (*domain.Task, error) {
	task, err := s.plans.LoadPlan(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load task plan: %w", err)
	}
	return task, nil
}

// ConfirmPlan loads a reviewed plan, validates its dependency graph, flips it
// to in progress, and registers it. Unknown, duplicate, self, and cyclic
// dependencies are rejected here; a confirmed task can always make progress.
func (s *TaskService) ConfirmPlan(reg *domain.Registry, id string) (*domain.Task, error) {
	task, err := s.plans.LoadPlan(id)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm task plan: %w", err)
	}

	if reg.TaskByID(task.ID) != nil {
		return nil, fmt.Errorf("task %s is already confirmed", task.ID)
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task plan %s: %w", task.ID, err)
	}

	task.Status = domain.TaskInProgress
	reg.AddTask(task)

	if _, err := s.plans.SavePlan(task); err != nil {
		return nil, fmt.Errorf("failed to confirm task plan: %w", err)
	}

	logging.Logger.Info("Task plan confirmed", "task", task.ID, "subtasks", len(task.Subtasks))
	return task, nil
}

// ExecuteSubtask transitions a ready subtask to in progress and provisions
// its workspace. Sequential tasks funnel every subtask through one shared
// workspace whose agent session is relaunched with the new prompt; parallel
// tasks get a dedicated workspace per subtask.
func (s *TaskService) ExecuteSubtask(reg *domain.Registry, task *domain.Task, subtaskID string) (*domain.Subtask, error) {
	project := reg.ProjectByName(task.Project)
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", task.Project, domain.ErrProjectNotFound)
	}

	st := task.Subtask(subtaskID)
	if st == nil {
		return nil, fmt.Errorf("subtask %s: %w", subtaskID, domain.ErrSubtaskNotFound)
	}
	if st.Status != domain.SubtaskPending {
		return nil, fmt.Errorf("subtask %s: %w", subtaskID, domain.ErrSubtaskNotPending)
	}

	completed := task.CompletedIDs()
	for _, dep := range st.Dependencies {
		if !completed[dep] {
			return nil, fmt.Errorf("subtask %s needs %s: %w", subtaskID, dep, domain.ErrDependencyUnsatisfied)
		}
	}

	st.Status = domain.SubtaskInProgress
	prompt := fmt.Sprintf("Subtask: %s\n\n%s", st.Name, st.Description)

	var err error
	if task.Type == domain.TaskSequential {
		err = s.executeSequential(reg, task, project, st, prompt)
	} else {
		err = s.executeParallel(reg, task, project, st, prompt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute subtask: %w", err)
	}

	if _, err := s.plans.SavePlan(task); err != nil {
		return nil, fmt.Errorf("failed to execute subtask: %w", err)
	}

	logging.Logger.Info("Subtask started", "task", task.ID, "subtask", st.ID, "workspace", st.WorkspaceName)
	return st, nil
}

// executeSequential binds the subtask to the task's single shared workspace,
// creating it on first use
func (s *TaskService) executeSequential(reg *domain.Registry, task *domain.Task, project *domain.Project, st *domain.Subtask, prompt string) error {
	wsName := "task-" + task.ID

	if ws := reg.WorkspaceByName(project.Name, wsName); ws != nil {
		st.WorkspaceName = ws.Name
		st.WorktreeName = ws.WorktreeName

		// Relaunch the agent with this subtask's prompt. A failed destroy is
		// tolerated; a failed relaunch is not.
		if ws.TmuxSession != "" {
			if _, err := s.tmux.DestroySession(ws.TmuxSession); err != nil {
				logging.Logger.Warn("Failed to destroy session before reuse",
					"session", ws.TmuxSession, "error", err)
			}
			if _, err := s.tmux.CreateSession(ws.TmuxSession, ws.Path, prompt); err != nil {
				return fmt.Errorf("failed to relaunch agent session: %w", err)
			}
		}
		return nil
	}

	ws, err := s.workspaces.Create(reg, project, wsName, CreateOptions{
		InitialPrompt: prompt,
		ReuseWorktree: true,
	})
	if err != nil {
		return err
	}

	st.WorkspaceName = ws.Name
	st.WorktreeName = ws.WorktreeName
	return nil
}

// executeParallel provisions a dedicated workspace for the subtask
func (s *TaskService) executeParallel(reg *domain.Registry, task *domain.Task, project *domain.Project, st *domain.Subtask, prompt string) error {
	ws, err := s.workspaces.Create(reg, project, "task-"+task.ID+"-"+st.ID, CreateOptions{
		InitialPrompt: prompt,
		ReuseWorktree: true,
	})
	if err != nil {
		return err
	}

	st.WorkspaceName = ws.Name
	st.WorktreeName = ws.WorktreeName
	return nil
}

// CompleteSubtask marks an in-progress subtask completed. The task itself
// completes exactly when its last non-completed subtask does.
func (s *TaskService) CompleteSubtask(task *domain.Task, subtaskID string) (*domain.Task, error) {
	st := task.Subtask(subtaskID)
	if st == nil {
		return nil, fmt.Errorf("subtask %s: %w", subtaskID, domain.ErrSubtaskNotFound)
	}
	if st.Status != domain.SubtaskInProgress {
		return nil, fmt.Errorf("subtask %s: %w", subtaskID, domain.ErrSubtaskNotInProgress)
	}

	st.Status = domain.SubtaskCompleted
	if task.AllCompleted() {
		task.Status = domain.TaskCompleted
	}

	if _, err := s.plans.SavePlan(task); err != nil {
		return nil, fmt.Errorf("failed to complete subtask: %w", err)
	}

	logging.Logger.Info("Subtask completed", "task", task.ID, "subtask", st.ID, "task_status", task.Status)
	return task, nil
}

// CancelTask cancels a task, tears down every workspace its subtasks
// reference, and removes the task from the registry. Teardown is best effort;
// one failed destroy never blocks the rest of the cancellation. The plan file
// is kept as the cancelled record.
func (s *TaskService) CancelTask(reg *domain.Registry, task *domain.Task, force bool) error {
	logging.Logger.Info("Cancelling task", "task", task.ID, "force", force)

	task.Status = domain.TaskCancelled

	names := make(map[string]bool)
	for _, st := range task.Subtasks {
		if st.WorkspaceName != "" {
			names[st.WorkspaceName] = true
		}
	}

	// Snapshot before destroying: Destroy deregisters as it goes
	var targets []*domain.Workspace
	for _, ws := range reg.Workspaces {
		if names[ws.Name] && ws.Project == task.Project {
			targets = append(targets, ws)
		}
	}

	for _, ws := range targets {
		if err := s.workspaces.Destroy(reg, ws, force); err != nil {
			logging.Logger.Warn("Failed to destroy workspace during cancel",
				"workspace", ws.Name, "error", err)
		}
	}

	reg.RemoveTask(task)

	if _, err := s.plans.SavePlan(task); err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}

	logging.Logger.Info("Task cancelled", "task", task.ID)
	return nil
}
