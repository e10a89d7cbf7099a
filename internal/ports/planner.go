package ports

import (
	"context"

	"workspace/internal/domain"
)

// TaskPlanner turns a free-form task description into a structured task plan
// by consulting an external planning agent
type TaskPlanner interface {
	// AnalyzeTask runs the planning agent. agentCommand overrides the
	// project's configured agent when non-empty.
	AnalyzeTask(ctx context.Context, project *domain.Project, description, agentCommand string) (*domain.Task, error)
}

// PlanStore persists task plans as reviewable files
type PlanStore interface {
	// SavePlan writes the plan file for the task and returns its path
	SavePlan(task *domain.Task) (string, error)
	// LoadPlan reads a plan file by task id
	LoadPlan(id string) (*domain.Task, error)
}
