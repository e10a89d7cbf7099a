package storage

import (
	"strings"

	"workspace/internal/domain"
)

func projectModelToDomain(m ProjectModel) domain.Project {
	return domain.Project{
		Name: m.Name,
		Root: m.Root,
	}
}

func domainToProjectModel(p domain.Project) ProjectModel {
	return ProjectModel{
		Name: p.Name,
		Root: p.Root,
	}
}

func workspaceModelToDomain(m WorkspaceModel) *domain.Workspace {
	return &domain.Workspace{
		ClaudeProcess: domain.ClaudeProcess{
			EndTime:      m.EndTime,
			ErrorMessage: m.ErrorMessage,
			ExitCode:     m.ExitCode,
			ResultFile:   m.ResultFile,
			StartTime:    m.StartTime,
			Status:       domain.ProcessStatus(m.ProcessStatus),
		},
		Name:         m.Name,
		Path:         m.Path,
		Project:      m.Project,
		Started:      m.Started,
		TmuxSession:  m.TmuxSession,
		WorktreeName: m.WorktreeName,
	}
}

func domainToWorkspaceModel(w *domain.Workspace) WorkspaceModel {
	return WorkspaceModel{
		EndTime:       w.ClaudeProcess.EndTime,
		ErrorMessage:  w.ClaudeProcess.ErrorMessage,
		ExitCode:      w.ClaudeProcess.ExitCode,
		Name:          w.Name,
		Path:          w.Path,
		ProcessStatus: string(w.ClaudeProcess.Status),
		Project:       w.Project,
		ResultFile:    w.ClaudeProcess.ResultFile,
		Started:       w.Started,
		StartTime:     w.ClaudeProcess.StartTime,
		TmuxSession:   w.TmuxSession,
		WorktreeName:  w.WorktreeName,
	}
}

func subtaskModelToDomain(m SubtaskModel) *domain.Subtask {
	return &domain.Subtask{
		Dependencies:  splitDependencies(m.Dependencies),
		Description:   m.Description,
		ID:            m.ID,
		Name:          m.Name,
		Status:        domain.SubtaskStatus(m.Status),
		WorkspaceName: m.WorkspaceName,
		WorktreeName:  m.WorktreeName,
	}
}

func domainToSubtaskModel(taskID string, position int, s *domain.Subtask) SubtaskModel {
	return SubtaskModel{
		Dependencies:  joinDependencies(s.Dependencies),
		Description:   s.Description,
		ID:            s.ID,
		Name:          s.Name,
		Position:      position,
		Status:        string(s.Status),
		TaskID:        taskID,
		WorkspaceName: s.WorkspaceName,
		WorktreeName:  s.WorktreeName,
	}
}

func taskModelToDomain(m TaskModel, subtasks []*domain.Subtask) *domain.Task {
	return &domain.Task{
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
		ID:          m.ID,
		Name:        m.Name,
		Project:     m.Project,
		Status:      domain.TaskStatus(m.Status),
		Subtasks:    subtasks,
		Type:        domain.TaskType(m.Type),
	}
}

func domainToTaskModel(t *domain.Task) TaskModel {
	return TaskModel{
		CreatedAt:   t.CreatedAt,
		Description: t.Description,
		ID:          t.ID,
		Name:        t.Name,
		Project:     t.Project,
		Status:      string(t.Status),
		Type:        string(t.Type),
	}
}

// Dependency ids are comma-joined for storage; ids never contain commas.

func joinDependencies(deps []string) string {
	return strings.Join(deps, ",")
}

func splitDependencies(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
