package planfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"workspace/internal/config"
	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// FileStore implements ports.PlanStore with one TOML file per task under
// the tasks directory. Plan files exist so a user can review and edit the
// generated plan before confirming it.
type FileStore struct{}

// Verify interface compliance at compile time
var _ ports.PlanStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore
func NewFileStore() *FileStore {
	return &FileStore{}
}

// planModel is the TOML shape of a task plan
type planModel struct {
	ID          string         `toml:"id"`
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Project     string         `toml:"project"`
	TaskType    string         `toml:"task_type"`
	Status      string         `toml:"status"`
	CreatedAt   time.Time      `toml:"created_at"`
	Subtasks    []subtaskModel `toml:"subtasks"`
}

type subtaskModel struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Description   string   `toml:"description"`
	Dependencies  []string `toml:"dependencies"`
	Status        string   `toml:"status"`
	WorkspaceName string   `toml:"workspace_name,omitempty"`
	WorktreeName  string   `toml:"worktree_name,omitempty"`
}

// PlanPath returns the plan file path for a task id
func PlanPath(id string) string {
	return filepath.Join(config.TasksDir(), id+".toml")
}

// SavePlan implements PlanStore.SavePlan
func (s *FileStore) SavePlan(task *domain.Task) (string, error) {
	model := planModel{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Project:     task.Project,
		TaskType:    string(task.Type),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
	}
	for _, st := range task.Subtasks {
		model.Subtasks = append(model.Subtasks, subtaskModel{
			ID:            st.ID,
			Name:          st.Name,
			Description:   st.Description,
			Dependencies:  st.Dependencies,
			Status:        string(st.Status),
			WorkspaceName: st.WorkspaceName,
			WorktreeName:  st.WorktreeName,
		})
	}

	data, err := toml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task plan: %w", err)
	}

	if err := os.MkdirAll(config.TasksDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create tasks directory: %w", err)
	}

	path := PlanPath(task.ID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save task plan: %w", err)
	}

	logging.Logger.Debug("Task plan saved", "task_id", task.ID, "path", path)
	return path, nil
}

// LoadPlan implements PlanStore.LoadPlan
func (s *FileStore) LoadPlan(id string) (*domain.Task, error) {
	path := PlanPath(id)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("task plan %s not found", id)
		}
		return nil, fmt.Errorf("failed to read task plan: %w", err)
	}

	var model planModel
	if err := toml.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse task plan: %w", err)
	}

	task := &domain.Task{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Project:     model.Project,
		Type:        domain.TaskType(model.TaskType),
		Status:      domain.TaskStatus(model.Status),
		CreatedAt:   model.CreatedAt,
	}
	for _, st := range model.Subtasks {
		task.Subtasks = append(task.Subtasks, &domain.Subtask{
			ID:            st.ID,
			Name:          st.Name,
			Description:   st.Description,
			Dependencies:  st.Dependencies,
			Status:        domain.SubtaskStatus(st.Status),
			WorkspaceName: st.WorkspaceName,
			WorktreeName:  st.WorktreeName,
		})
	}

	return task, nil
}
