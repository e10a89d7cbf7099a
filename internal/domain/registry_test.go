package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return &Registry{
		Projects: []Project{
			{Name: "demo", Root: "/repos/demo"},
			{Name: "other", Root: "/repos/other"},
		},
	}
}

func TestProjectByName(t *testing.T) {
	reg := testRegistry()

	p := reg.ProjectByName("demo")
	require.NotNil(t, p)
	assert.Equal(t, "/repos/demo", p.Root)

	assert.Nil(t, reg.ProjectByName("missing"))
}

func TestProjectFor(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "feature", Project: "demo"}

	p, err := reg.ProjectFor(ws)
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)

	ws.Project = "missing"
	_, err = reg.ProjectFor(ws)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestWorkspaceByName_ScopedByProject(t *testing.T) {
	reg := testRegistry()
	reg.AddWorkspace(&Workspace{Name: "feature", Project: "demo"})
	reg.AddWorkspace(&Workspace{Name: "feature", Project: "other"})

	ws := reg.WorkspaceByName("other", "feature")
	require.NotNil(t, ws)
	assert.Equal(t, "other", ws.Project)

	assert.Nil(t, reg.WorkspaceByName("demo", "missing"))

	// Empty project matches the first workspace with that name
	any := reg.WorkspaceByName("", "feature")
	require.NotNil(t, any)
	assert.Equal(t, "demo", any.Project)
}

func TestRemoveWorkspace(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "feature", Project: "demo"}
	reg.AddWorkspace(ws)

	assert.True(t, reg.RemoveWorkspace(ws))
	assert.Empty(t, reg.Workspaces)
	assert.False(t, reg.RemoveWorkspace(ws))
}

func TestWorkspacePaths(t *testing.T) {
	reg := testRegistry()
	reg.AddWorkspace(&Workspace{Name: "a", Project: "demo", Path: "/repos/worktrees/demo-calm-owl"})
	reg.AddWorkspace(&Workspace{Name: "b", Project: "demo", Path: "/repos/worktrees/demo-brave-fox"})

	paths := reg.WorkspacePaths()
	assert.True(t, paths["/repos/worktrees/demo-calm-owl"])
	assert.True(t, paths["/repos/worktrees/demo-brave-fox"])
	assert.False(t, paths["/repos/worktrees/demo-unused"])
}

func TestTaskAddRemoveLookup(t *testing.T) {
	reg := testRegistry()
	task := &Task{ID: "abc12345", Project: "demo"}
	reg.AddTask(task)

	assert.Equal(t, task, reg.TaskByID("abc12345"))
	assert.Nil(t, reg.TaskByID("missing"))

	assert.True(t, reg.RemoveTask(task))
	assert.Empty(t, reg.Tasks)
	assert.False(t, reg.RemoveTask(task))
}

func TestDetachWorkspace_RevertsInProgressSubtask(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "task-abc12345", Project: "demo", WorktreeName: "calm-owl"}
	task := &Task{
		ID:      "abc12345",
		Project: "demo",
		Status:  TaskInProgress,
		Subtasks: []*Subtask{
			{ID: "st1", Status: SubtaskInProgress, WorkspaceName: "task-abc12345", WorktreeName: "calm-owl"},
			{ID: "st2", Status: SubtaskPending},
		},
	}
	reg.AddWorkspace(ws)
	reg.AddTask(task)

	modified := reg.DetachWorkspace(ws)

	require.Len(t, modified, 1)
	st := task.Subtask("st1")
	assert.Equal(t, SubtaskPending, st.Status)
	assert.Empty(t, st.WorkspaceName)
	assert.Empty(t, st.WorktreeName)
}

func TestDetachWorkspace_RevertsCompletedTask(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "task-abc12345-st2", Project: "demo"}
	task := &Task{
		ID:      "abc12345",
		Project: "demo",
		Status:  TaskCompleted,
		Subtasks: []*Subtask{
			{ID: "st1", Status: SubtaskCompleted},
			{ID: "st2", Status: SubtaskInProgress, WorkspaceName: "task-abc12345-st2"},
		},
	}
	reg.AddTask(task)

	reg.DetachWorkspace(ws)

	assert.Equal(t, TaskInProgress, task.Status)
	assert.Equal(t, SubtaskPending, task.Subtask("st2").Status)
}

func TestDetachWorkspace_IgnoresOtherProjects(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "shared-name", Project: "demo"}
	task := &Task{
		ID:      "def67890",
		Project: "other",
		Status:  TaskInProgress,
		Subtasks: []*Subtask{
			{ID: "st1", Status: SubtaskInProgress, WorkspaceName: "shared-name"},
		},
	}
	reg.AddTask(task)

	modified := reg.DetachWorkspace(ws)

	assert.Empty(t, modified)
	assert.Equal(t, SubtaskInProgress, task.Subtask("st1").Status)
	assert.Equal(t, "shared-name", task.Subtask("st1").WorkspaceName)
}

func TestDetachWorkspace_CompletedSubtaskKeepsStatus(t *testing.T) {
	reg := testRegistry()
	ws := &Workspace{Name: "task-abc12345-st1", Project: "demo"}
	task := &Task{
		ID:      "abc12345",
		Project: "demo",
		Status:  TaskCompleted,
		Subtasks: []*Subtask{
			{ID: "st1", Status: SubtaskCompleted, WorkspaceName: "task-abc12345-st1", WorktreeName: "calm-owl"},
		},
	}
	reg.AddTask(task)

	modified := reg.DetachWorkspace(ws)

	// Association cleared but a completed subtask stays completed, so the
	// task remains completed as well
	require.Len(t, modified, 1)
	st := task.Subtask("st1")
	assert.Equal(t, SubtaskCompleted, st.Status)
	assert.Empty(t, st.WorkspaceName)
	assert.Equal(t, TaskCompleted, task.Status)
}
