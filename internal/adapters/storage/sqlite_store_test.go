package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace/internal/domain"
)

// newTestStore opens a store against a throwaway database
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	reg, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, reg.Projects)
	assert.Empty(t, reg.Workspaces)
	assert.Empty(t, reg.Tasks)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	exitCode := 0
	reg := &domain.Registry{
		Projects: []domain.Project{
			{Name: "api", Root: "/home/dev/projects/api"},
		},
		Workspaces: []*domain.Workspace{
			{
				ClaudeProcess: domain.ClaudeProcess{
					ExitCode:   &exitCode,
					ResultFile: "/home/dev/.workspace/sessions/api-calm-otter.txt",
					StartTime:  &started,
					Status:     domain.ProcessCompleted,
				},
				Name:         "fix-login",
				Path:         "/home/dev/projects/worktrees/api-calm-otter",
				Project:      "api",
				Started:      true,
				TmuxSession:  "api-calm-otter",
				WorktreeName: "calm-otter",
			},
		},
		Tasks: []*domain.Task{
			{
				CreatedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
				Description: "migrate auth to tokens",
				ID:          "a1b2c3d4",
				Name:        "auth-migration",
				Project:     "api",
				Status:      domain.TaskInProgress,
				Type:        domain.TaskSequential,
				Subtasks: []*domain.Subtask{
					{ID: "st1", Name: "schema", Status: domain.SubtaskCompleted},
					{
						Dependencies:  []string{"st1"},
						Description:   "issue and verify tokens",
						ID:            "st2",
						Name:          "tokens",
						Status:        domain.SubtaskInProgress,
						WorkspaceName: "task-a1b2c3d4",
						WorktreeName:  "task-a1b2c3d4",
					},
				},
			},
		},
	}

	require.NoError(t, store.Save(ctx, reg))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	require.Len(t, loaded.Projects, 1)
	assert.Equal(t, reg.Projects[0], loaded.Projects[0])

	require.Len(t, loaded.Workspaces, 1)
	ws := loaded.Workspaces[0]
	assert.Equal(t, "fix-login", ws.Name)
	assert.Equal(t, "api", ws.Project)
	assert.Equal(t, "calm-otter", ws.WorktreeName)
	assert.Equal(t, "api-calm-otter", ws.TmuxSession)
	assert.True(t, ws.Started)
	assert.Equal(t, domain.ProcessCompleted, ws.ClaudeProcess.Status)
	require.NotNil(t, ws.ClaudeProcess.StartTime)
	assert.WithinDuration(t, started, *ws.ClaudeProcess.StartTime, time.Second)
	require.NotNil(t, ws.ClaudeProcess.ExitCode)
	assert.Equal(t, 0, *ws.ClaudeProcess.ExitCode)
	assert.Nil(t, ws.ClaudeProcess.EndTime)

	require.Len(t, loaded.Tasks, 1)
	task := loaded.Tasks[0]
	assert.Equal(t, "a1b2c3d4", task.ID)
	assert.Equal(t, domain.TaskInProgress, task.Status)
	assert.Equal(t, domain.TaskSequential, task.Type)
	require.Len(t, task.Subtasks, 2)
	assert.Equal(t, "st1", task.Subtasks[0].ID)
	assert.Equal(t, "st2", task.Subtasks[1].ID)
	assert.Equal(t, []string{"st1"}, task.Subtasks[1].Dependencies)
	assert.Equal(t, "task-a1b2c3d4", task.Subtasks[1].WorkspaceName)
}

func TestSQLiteStore_SaveDeletesRemoved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	reg := &domain.Registry{
		Workspaces: []*domain.Workspace{
			{Name: "alpha", Path: "/tmp/a", Project: "api", WorktreeName: "a"},
			{Name: "beta", Path: "/tmp/b", Project: "api", WorktreeName: "b"},
		},
	}
	require.NoError(t, store.Save(ctx, reg))

	reg.RemoveWorkspace(reg.WorkspaceByName("api", "alpha"))
	require.NoError(t, store.Save(ctx, reg))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Workspaces, 1)
	assert.Equal(t, "beta", loaded.Workspaces[0].Name)
}

func TestSQLiteStore_DeletingTaskRemovesSubtasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	reg := &domain.Registry{
		Tasks: []*domain.Task{
			{
				CreatedAt: time.Now().UTC(),
				ID:        "feedbeef",
				Name:      "doomed",
				Project:   "api",
				Status:    domain.TaskPlanning,
				Type:      domain.TaskParallel,
				Subtasks: []*domain.Subtask{
					{ID: "st1", Name: "one", Status: domain.SubtaskPending},
					{ID: "st2", Name: "two", Status: domain.SubtaskPending},
				},
			},
		},
	}
	require.NoError(t, store.Save(ctx, reg))

	reg.Tasks = nil
	require.NoError(t, store.Save(ctx, reg))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tasks)

	var count int64
	store.db.Model(&SubtaskModel{}).Count(&count)
	assert.Zero(t, count, "subtasks should be gone with their task")
}

func TestSQLiteStore_SubtaskOrderPreserved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Declaration order deliberately differs from lexical order
	ids := []string{"zz", "mm", "aa"}
	task := &domain.Task{
		CreatedAt: time.Now().UTC(),
		ID:        "0badcafe",
		Name:      "ordered",
		Project:   "api",
		Status:    domain.TaskInProgress,
		Type:      domain.TaskSequential,
	}
	for _, id := range ids {
		task.Subtasks = append(task.Subtasks, &domain.Subtask{
			ID:     id,
			Name:   id,
			Status: domain.SubtaskPending,
		})
	}

	require.NoError(t, store.Save(ctx, &domain.Registry{Tasks: []*domain.Task{task}}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Tasks, 1)
	require.Len(t, loaded.Tasks[0].Subtasks, 3)
	for i, id := range ids {
		assert.Equal(t, id, loaded.Tasks[0].Subtasks[i].ID)
	}
}

func TestSQLiteStore_UpdateExistingWorkspace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ws := &domain.Workspace{
		ClaudeProcess: domain.NewClaudeProcess(),
		Name:          "evolving",
		Path:          "/tmp/w",
		Project:       "api",
		Started:       true,
		WorktreeName:  "w",
	}
	reg := &domain.Registry{Workspaces: []*domain.Workspace{ws}}
	require.NoError(t, store.Save(ctx, reg))

	ws.Started = false
	ws.ClaudeProcess.Status = domain.ProcessRunning
	require.NoError(t, store.Save(ctx, reg))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Workspaces, 1)
	assert.False(t, loaded.Workspaces[0].Started)
	assert.Equal(t, domain.ProcessRunning, loaded.Workspaces[0].ClaudeProcess.Status)
}
