package domain

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrWorkspaceExists   = errors.New("workspace already exists")
	ErrWorkspaceNotFound = errors.New("workspace not found")

	ErrTaskNotFound          = errors.New("task not found")
	ErrSubtaskNotFound       = errors.New("subtask not found")
	ErrSubtaskNotPending     = errors.New("subtask is not pending")
	ErrSubtaskNotInProgress  = errors.New("subtask is not in progress")
	ErrDependencyUnsatisfied = errors.New("subtask has uncompleted dependencies")

	ErrDuplicateSubtaskID = errors.New("duplicate subtask id")
	ErrUnknownDependency  = errors.New("dependency references unknown subtask")
	ErrSelfDependency     = errors.New("subtask depends on itself")
	ErrDependencyCycle    = errors.New("subtask dependencies form a cycle")
)
