package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskType determines whether a task's subtasks share one workspace or each
// get an independent one
type TaskType string

const (
	TaskSequential TaskType = "sequential"
	TaskParallel   TaskType = "parallel"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskPlanning   TaskStatus = "planning"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// SubtaskStatus is the lifecycle state of a subtask
type SubtaskStatus string

const (
	SubtaskPending    SubtaskStatus = "pending"
	SubtaskInProgress SubtaskStatus = "in_progress"
	SubtaskCompleted  SubtaskStatus = "completed"
)

// Subtask is an atomic unit of work within a task, gated by a dependency set.
// Dependencies reference subtask ids within the same task and keep declaration
// order. WorkspaceName and WorktreeName stay empty until execution starts.
type Subtask struct {
	Dependencies  []string
	Description   string
	ID            string
	Name          string
	Status        SubtaskStatus
	WorkspaceName string
	WorktreeName  string
}

// Task is a dependency graph of subtasks executed against one project
type Task struct {
	CreatedAt   time.Time
	Description string
	ID          string
	Name        string
	Project     string
	Status      TaskStatus
	Subtasks    []*Subtask
	Type        TaskType
}

// Subtask returns the subtask with the given id, or nil
func (t *Task) Subtask(id string) *Subtask {
	for _, st := range t.Subtasks {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// CompletedIDs returns the set of completed subtask ids
func (t *Task) CompletedIDs() map[string]bool {
	completed := make(map[string]bool)
	for _, st := range t.Subtasks {
		if st.Status == SubtaskCompleted {
			completed[st.ID] = true
		}
	}
	return completed
}

// ReadySubtasks returns pending subtasks whose dependencies are all completed,
// in declaration order
func (t *Task) ReadySubtasks() []*Subtask {
	completed := t.CompletedIDs()

	var ready []*Subtask
	for _, st := range t.Subtasks {
		if st.Status != SubtaskPending {
			continue
		}
		satisfied := true
		for _, dep := range st.Dependencies {
			if !completed[dep] {
				satisfied = false
				break
			}
		}
		if satisfied {
			ready = append(ready, st)
		}
	}
	return ready
}

// AllCompleted reports whether every subtask is completed
func (t *Task) AllCompleted() bool {
	for _, st := range t.Subtasks {
		if st.Status != SubtaskCompleted {
			return false
		}
	}
	return true
}

// Validate checks the structural soundness of the subtask graph: unique ids,
// no self-dependencies, no references to unknown subtasks, and no dependency
// cycles. A plan that fails validation would starve one or more subtasks
// forever, so confirmation rejects it up front.
func (t *Task) Validate() error {
	ids := make(map[string]bool, len(t.Subtasks))
	for _, st := range t.Subtasks {
		if ids[st.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSubtaskID, st.ID)
		}
		ids[st.ID] = true
	}

	for _, st := range t.Subtasks {
		for _, dep := range st.Dependencies {
			if dep == st.ID {
				return fmt.Errorf("%w: %q", ErrSelfDependency, st.ID)
			}
			if !ids[dep] {
				return fmt.Errorf("%w: subtask %q depends on %q", ErrUnknownDependency, st.ID, dep)
			}
		}
	}

	if cycle := t.findCycle(); cycle != nil {
		return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(cycle, " -> "))
	}

	return nil
}

// findCycle runs a depth-first search over the dependency edges and returns
// the ids forming the first cycle found, or nil. The recursion stack plus a
// parent map lets the cycle path be reconstructed for the error message.
func (t *Task) findCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	parent := make(map[string]string)

	var dfs func(id string) []string
	dfs = func(id string) []string {
		visited[id] = true
		recStack[id] = true

		st := t.Subtask(id)
		if st == nil {
			recStack[id] = false
			return nil
		}

		for _, dep := range st.Dependencies {
			if !visited[dep] {
				parent[dep] = id
				if cycle := dfs(dep); cycle != nil {
					return cycle
				}
			} else if recStack[dep] {
				// Found a cycle, walk parents back to reconstruct it
				cycle := []string{dep}
				current := id
				for current != dep {
					cycle = append([]string{current}, cycle...)
					current = parent[current]
				}
				return append([]string{dep}, cycle...)
			}
		}

		recStack[id] = false
		return nil
	}

	for _, st := range t.Subtasks {
		if !visited[st.ID] {
			if cycle := dfs(st.ID); cycle != nil {
				return cycle
			}
		}
	}

	return nil
}
