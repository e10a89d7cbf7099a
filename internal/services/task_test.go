package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workspace/internal/domain"
	portsmocks "workspace/internal/ports/mocks"
)

// taskHarness bundles a TaskService with the mocks behind it, including the
// real WorkspaceService used for subtask provisioning.
type taskHarness struct {
	service   *TaskService
	planner   *portsmocks.MockTaskPlanner
	plans     *portsmocks.MockPlanStore
	tmux      *portsmocks.MockTmuxClient
	worktrees *portsmocks.MockWorktreeManager
}

func newTaskHarness(t *testing.T) *taskHarness {
	t.Helper()

	planner := portsmocks.NewMockTaskPlanner(t)
	plans := portsmocks.NewMockPlanStore(t)
	tmux := portsmocks.NewMockTmuxClient(t)
	worktrees := portsmocks.NewMockWorktreeManager(t)
	runner := portsmocks.NewMockCommandRunner(t)

	workspaces := NewWorkspaceService(worktrees, tmux, runner, plans)

	return &taskHarness{
		service:   NewTaskService(planner, plans, tmux, workspaces),
		planner:   planner,
		plans:     plans,
		tmux:      tmux,
		worktrees: worktrees,
	}
}

func planningTask() *domain.Task {
	return &domain.Task{
		Description: "Add rate limiting to the API",
		ID:          "ab12cd34",
		Name:        "rate-limiting",
		Project:     "api",
		Status:      domain.TaskPlanning,
		Subtasks: []*domain.Subtask{
			{ID: "s1", Name: "Setup", Description: "Create scaffolding", Status: domain.SubtaskPending},
			{ID: "s2", Name: "Implement", Description: "Wire the handlers", Status: domain.SubtaskPending, Dependencies: []string{"s1"}},
		},
		Type: domain.TaskSequential,
	}
}

func TestCreatePlan(t *testing.T) {
	h := newTaskHarness(t)
	project := &domain.Project{Name: "api", Root: "/home/dev/api"}
	task := planningTask()

	h.planner.EXPECT().
		AnalyzeTask(mock.Anything, project, "Add rate limiting to the API", "claude").
		Return(task, nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	got, path, err := h.service.CreatePlan(context.Background(), project, "Add rate limiting to the API", "claude")

	require.NoError(t, err)
	assert.Same(t, task, got)
	assert.Equal(t, "/plans/ab12cd34.toml", path)
}

func TestCreatePlan_PlannerFailure(t *testing.T) {
	h := newTaskHarness(t)
	project := &domain.Project{Name: "api", Root: "/home/dev/api"}

	h.planner.EXPECT().
		AnalyzeTask(mock.Anything, project, "Add rate limiting to the API", "claude").
		Return(nil, errors.New("agent exited with status 1"))

	_, _, err := h.service.CreatePlan(context.Background(), project, "Add rate limiting to the API", "claude")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create task plan")
}

func TestConfirmPlan(t *testing.T) {
	h := newTaskHarness(t)
	reg := &domain.Registry{}
	task := planningTask()

	h.plans.EXPECT().LoadPlan("ab12cd34").Return(task, nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	got, err := h.service.ConfirmPlan(reg, "ab12cd34")

	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
	assert.Same(t, task, reg.TaskByID("ab12cd34"))
}

func TestConfirmPlan_RejectsUnknownDependency(t *testing.T) {
	h := newTaskHarness(t)
	reg := &domain.Registry{}
	task := planningTask()
	task.Subtasks[1].Dependencies = []string{"nope"}

	h.plans.EXPECT().LoadPlan("ab12cd34").Return(task, nil)

	_, err := h.service.ConfirmPlan(reg, "ab12cd34")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownDependency)
	assert.Nil(t, reg.TaskByID("ab12cd34"))
}

func TestConfirmPlan_RejectsDependencyCycle(t *testing.T) {
	h := newTaskHarness(t)
	reg := &domain.Registry{}
	task := planningTask()
	task.Subtasks[0].Dependencies = []string{"s2"}

	h.plans.EXPECT().LoadPlan("ab12cd34").Return(task, nil)

	_, err := h.service.ConfirmPlan(reg, "ab12cd34")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyCycle)
}

func TestConfirmPlan_AlreadyConfirmed(t *testing.T) {
	h := newTaskHarness(t)
	reg := &domain.Registry{}
	confirmed := planningTask()
	confirmed.Status = domain.TaskInProgress
	reg.AddTask(confirmed)

	h.plans.EXPECT().LoadPlan("ab12cd34").Return(planningTask(), nil)

	_, err := h.service.ConfirmPlan(reg, "ab12cd34")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already confirmed")
}

func TestExecuteSubtask_ParallelCreatesDedicatedWorkspace(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Type = domain.TaskParallel
	reg.AddTask(task)

	h.worktrees.EXPECT().CreateWorktree(project.Root, mock.Anything, mock.Anything, "").Return(nil)
	h.tmux.EXPECT().CreateSession(mock.Anything, mock.Anything, "Subtask: Setup\n\nCreate scaffolding").Return(true, nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	st, err := h.service.ExecuteSubtask(reg, task, "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SubtaskInProgress, st.Status)
	assert.Equal(t, "task-ab12cd34-s1", st.WorkspaceName)
	ws := reg.WorkspaceByName("api", "task-ab12cd34-s1")
	require.NotNil(t, ws)
	assert.Equal(t, ws.WorktreeName, st.WorktreeName)
}

func TestExecuteSubtask_SequentialFirstUseCreatesSharedWorkspace(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	reg.AddTask(task)

	h.worktrees.EXPECT().CreateWorktree(project.Root, mock.Anything, mock.Anything, "").Return(nil)
	h.tmux.EXPECT().CreateSession(mock.Anything, mock.Anything, "Subtask: Setup\n\nCreate scaffolding").Return(true, nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	st, err := h.service.ExecuteSubtask(reg, task, "s1")

	require.NoError(t, err)
	assert.Equal(t, "task-ab12cd34", st.WorkspaceName)
	assert.NotNil(t, reg.WorkspaceByName("api", "task-ab12cd34"))
}

func TestExecuteSubtask_SequentialReusesSharedWorkspace(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Subtasks[0].Status = domain.SubtaskCompleted
	reg.AddTask(task)

	shared := &domain.Workspace{
		Name:         "task-ab12cd34",
		Project:      "api",
		Path:         filepath.Join(filepath.Dir(project.Root), "worktrees", "api-old-fox"),
		TmuxSession:  "api-old-fox",
		WorktreeName: "old-fox",
	}
	reg.AddWorkspace(shared)

	h.tmux.EXPECT().DestroySession("api-old-fox").Return(true, nil)
	h.tmux.EXPECT().CreateSession("api-old-fox", shared.Path, "Subtask: Implement\n\nWire the handlers").Return(true, nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	st, err := h.service.ExecuteSubtask(reg, task, "s2")

	require.NoError(t, err)
	assert.Equal(t, "task-ab12cd34", st.WorkspaceName)
	assert.Equal(t, "old-fox", st.WorktreeName)
	assert.Len(t, reg.Workspaces, 1)
}

func TestExecuteSubtask_SequentialRelaunchFailure(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	reg.AddTask(task)

	shared := &domain.Workspace{
		Name:         "task-ab12cd34",
		Project:      "api",
		Path:         filepath.Join(filepath.Dir(project.Root), "worktrees", "api-old-fox"),
		TmuxSession:  "api-old-fox",
		WorktreeName: "old-fox",
	}
	reg.AddWorkspace(shared)

	h.tmux.EXPECT().DestroySession("api-old-fox").Return(false, errors.New("no server running"))
	h.tmux.EXPECT().CreateSession("api-old-fox", shared.Path, mock.Anything).
		Return(false, errors.New("tmux: command not found"))

	_, err := h.service.ExecuteSubtask(reg, task, "s1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to relaunch agent session")
}

func TestExecuteSubtask_DependencyGate(t *testing.T) {
	h := newTaskHarness(t)
	reg, _ := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	reg.AddTask(task)

	_, err := h.service.ExecuteSubtask(reg, task, "s2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyUnsatisfied)
	assert.Equal(t, domain.SubtaskPending, task.Subtasks[1].Status)
}

func TestExecuteSubtask_NotPending(t *testing.T) {
	h := newTaskHarness(t)
	reg, _ := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Subtasks[0].Status = domain.SubtaskInProgress
	reg.AddTask(task)

	_, err := h.service.ExecuteSubtask(reg, task, "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubtaskNotPending)
}

func TestExecuteSubtask_UnknownProject(t *testing.T) {
	h := newTaskHarness(t)
	reg := &domain.Registry{}

	task := planningTask()
	task.Status = domain.TaskInProgress

	_, err := h.service.ExecuteSubtask(reg, task, "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCompleteSubtask(t *testing.T) {
	h := newTaskHarness(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Subtasks[0].Status = domain.SubtaskInProgress

	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	got, err := h.service.CompleteSubtask(task, "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SubtaskCompleted, task.Subtasks[0].Status)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestCompleteSubtask_LastSubtaskCompletesTask(t *testing.T) {
	h := newTaskHarness(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Subtasks[0].Status = domain.SubtaskCompleted
	task.Subtasks[1].Status = domain.SubtaskInProgress

	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	got, err := h.service.CompleteSubtask(task, "s2")

	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, got.Status)
}

func TestCompleteSubtask_NotInProgress(t *testing.T) {
	h := newTaskHarness(t)

	task := planningTask()
	task.Status = domain.TaskInProgress

	_, err := h.service.CompleteSubtask(task, "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubtaskNotInProgress)
}

func TestCancelTask_DestroysTaskWorkspaces(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Type = domain.TaskParallel
	task.Subtasks[0].Status = domain.SubtaskInProgress
	task.Subtasks[0].WorkspaceName = "task-ab12cd34-s1"
	task.Subtasks[1].Status = domain.SubtaskInProgress
	task.Subtasks[1].WorkspaceName = "task-ab12cd34-s2"
	reg.AddTask(task)

	worktreesDir := filepath.Join(filepath.Dir(project.Root), "worktrees")
	ws1 := &domain.Workspace{Name: "task-ab12cd34-s1", Project: "api", Path: filepath.Join(worktreesDir, "api-one"), WorktreeName: "one"}
	ws2 := &domain.Workspace{Name: "task-ab12cd34-s2", Project: "api", Path: filepath.Join(worktreesDir, "api-two"), WorktreeName: "two"}
	reg.AddWorkspace(ws1)
	reg.AddWorkspace(ws2)

	h.worktrees.EXPECT().RemoveWorktree(project.Root, ws1.Path, true).Return(nil)
	h.worktrees.EXPECT().RemoveWorktree(project.Root, ws2.Path, true).Return(nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	err := h.service.CancelTask(reg, task, true)

	require.NoError(t, err)
	assert.Equal(t, domain.TaskCancelled, task.Status)
	assert.Nil(t, reg.TaskByID("ab12cd34"))
	assert.Empty(t, reg.Workspaces)
}

func TestCancelTask_ContinuesAfterDestroyFailure(t *testing.T) {
	h := newTaskHarness(t)
	reg, project := testProject(t)

	task := planningTask()
	task.Status = domain.TaskInProgress
	task.Type = domain.TaskParallel
	task.Subtasks[0].Status = domain.SubtaskInProgress
	task.Subtasks[0].WorkspaceName = "task-ab12cd34-s1"
	task.Subtasks[1].Status = domain.SubtaskInProgress
	task.Subtasks[1].WorkspaceName = "task-ab12cd34-s2"
	reg.AddTask(task)

	worktreesDir := filepath.Join(filepath.Dir(project.Root), "worktrees")
	ws1 := &domain.Workspace{Name: "task-ab12cd34-s1", Project: "api", Path: filepath.Join(worktreesDir, "api-one"), WorktreeName: "one"}
	ws2 := &domain.Workspace{Name: "task-ab12cd34-s2", Project: "api", Path: filepath.Join(worktreesDir, "api-two"), WorktreeName: "two"}
	reg.AddWorkspace(ws1)
	reg.AddWorkspace(ws2)

	h.worktrees.EXPECT().RemoveWorktree(project.Root, ws1.Path, false).
		Return(errors.New("fatal: working tree is dirty"))
	h.worktrees.EXPECT().RemoveWorktree(project.Root, ws2.Path, false).Return(nil)
	h.plans.EXPECT().SavePlan(task).Return("/plans/ab12cd34.toml", nil)

	err := h.service.CancelTask(reg, task, false)

	require.NoError(t, err)
	assert.Nil(t, reg.TaskByID("ab12cd34"))
	assert.NotNil(t, reg.WorkspaceByName("api", "task-ab12cd34-s1"))
	assert.Nil(t, reg.WorkspaceByName("api", "task-ab12cd34-s2"))
}
