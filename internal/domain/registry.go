package domain

// Registry is the persisted aggregate of everything the workspace manager
// knows: registered projects, active workspaces, and confirmed tasks. One
// command invocation owns the registry from load to save; cross-invocation
// mutators are serialized by the storage layer's lock.
type Registry struct {
	Projects   []Project
	Tasks      []*Task
	Workspaces []*Workspace
}

// ProjectByName returns the registered project with the given name, or nil
func (r *Registry) ProjectByName(name string) *Project {
	for i := range r.Projects {
		if r.Projects[i].Name == name {
			return &r.Projects[i]
		}
	}
	return nil
}

// ProjectFor resolves the project owning a workspace
func (r *Registry) ProjectFor(ws *Workspace) (*Project, error) {
	if p := r.ProjectByName(ws.Project); p != nil {
		return p, nil
	}
	return nil, ErrProjectNotFound
}

// AddProject registers a project
func (r *Registry) AddProject(p Project) {
	r.Projects = append(r.Projects, p)
}

// RemoveProject drops the named project. Returns false when it was not registered.
func (r *Registry) RemoveProject(name string) bool {
	for i := range r.Projects {
		if r.Projects[i].Name == name {
			r.Projects = append(r.Projects[:i], r.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// ProjectWorkspaces returns the active workspaces of the named project
func (r *Registry) ProjectWorkspaces(name string) []*Workspace {
	var out []*Workspace
	for _, ws := range r.Workspaces {
		if ws.Project == name {
			out = append(out, ws)
		}
	}
	return out
}

// WorkspaceByName returns the active workspace with the given name, or nil.
// Workspace names are unique per project; an empty project matches any.
func (r *Registry) WorkspaceByName(project, name string) *Workspace {
	for _, ws := range r.Workspaces {
		if ws.Name != name {
			continue
		}
		if project == "" || ws.Project == project {
			return ws
		}
	}
	return nil
}

// WorkspacePaths returns the set of worktree paths held by active workspaces
func (r *Registry) WorkspacePaths() map[string]bool {
	paths := make(map[string]bool, len(r.Workspaces))
	for _, ws := range r.Workspaces {
		paths[ws.Path] = true
	}
	return paths
}

// AddWorkspace registers an active workspace
func (r *Registry) AddWorkspace(ws *Workspace) {
	r.Workspaces = append(r.Workspaces, ws)
}

// RemoveWorkspace drops a workspace from the active set.
// Returns false when it was not registered.
func (r *Registry) RemoveWorkspace(ws *Workspace) bool {
	for i, existing := range r.Workspaces {
		if existing == ws || (existing.Name == ws.Name && existing.Project == ws.Project) {
			r.Workspaces = append(r.Workspaces[:i], r.Workspaces[i+1:]...)
			return true
		}
	}
	return false
}

// TaskByID returns the confirmed task with the given id, or nil
func (r *Registry) TaskByID(id string) *Task {
	for _, t := range r.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddTask registers a confirmed task
func (r *Registry) AddTask(t *Task) {
	r.Tasks = append(r.Tasks, t)
}

// RemoveTask drops a task from the registry. Returns false when it was not registered.
func (r *Registry) RemoveTask(t *Task) bool {
	for i, existing := range r.Tasks {
		if existing == t || existing.ID == t.ID {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// DetachWorkspace propagates a workspace's destruction into every task that
// references it: the subtask association is cleared, in-progress subtasks
// revert to pending, and a task left completed with non-completed subtasks
// reverts to in progress. Returns the tasks that were modified.
func (r *Registry) DetachWorkspace(ws *Workspace) []*Task {
	var modified []*Task

	for _, task := range r.Tasks {
		if task.Project != ws.Project {
			continue
		}

		taskModified := false
		for _, st := range task.Subtasks {
			if st.WorkspaceName != ws.Name {
				continue
			}
			if st.Status == SubtaskInProgress {
				st.Status = SubtaskPending
			}
			st.WorkspaceName = ""
			st.WorktreeName = ""
			taskModified = true
		}

		if taskModified {
			if task.Status == TaskCompleted && !task.AllCompleted() {
				task.Status = TaskInProgress
			}
			modified = append(modified, task)
		}
	}

	return modified
}
