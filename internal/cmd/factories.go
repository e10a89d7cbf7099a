package cmd

import (
	"context"
	"fmt"
	"os"

	adapteragent "workspace/internal/adapters/agent"
	adaptergit "workspace/internal/adapters/git"
	adapterplanfile "workspace/internal/adapters/planfile"
	adapterprocess "workspace/internal/adapters/process"
	adaptershell "workspace/internal/adapters/shell"
	adapterstorage "workspace/internal/adapters/storage"
	adaptertmux "workspace/internal/adapters/tmux"
	"workspace/internal/config"
	"workspace/internal/domain"
	"workspace/internal/ports"
	"workspace/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	MonitorService   *services.MonitorService
	StatusService    *services.StatusService
	TaskService      *services.TaskService
	WorkspaceService *services.WorkspaceService

	// Internal - for cleanup only
	store ports.RegistryStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(config.DBPath())
	if err != nil {
		return nil, err
	}

	// Create adapters
	gitClient := adaptergit.NewCLIClient()
	planStore := adapterplanfile.NewFileStore()
	planner := adapteragent.NewCLIPlanner()
	runner := adaptershell.NewOSRunner()
	tmuxClient := adaptertmux.NewClient()

	// Create services
	monitorService := services.NewMonitorService(tmuxClient, adapterprocess.NewOSProcessInspector())
	statusService := services.NewStatusService(gitClient, monitorService)
	workspaceService := services.NewWorkspaceService(gitClient, tmuxClient, runner, planStore)
	taskService := services.NewTaskService(planner, planStore, tmuxClient, workspaceService)

	return &Container{
		MonitorService:   monitorService,
		StatusService:    statusService,
		TaskService:      taskService,
		WorkspaceService: workspaceService,
		store:            store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// WithRegistry runs fn as a registry transaction: take the cross-process
// lock, load, apply, save. The registry is saved only when fn returns nil,
// so a failed mutation never persists partial state.
func (c *Container) WithRegistry(ctx context.Context, fn func(reg *domain.Registry) error) error {
	lock, err := adapterstorage.AcquireLock(config.LockPath())
	if err != nil {
		return fmt.Errorf("failed to lock registry: %w", err)
	}
	defer lock.Release()

	reg, err := c.store.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(reg); err != nil {
		return err
	}

	return c.store.Save(ctx, reg)
}

// LoadRegistry reads the registry without taking the lock, for read-only
// commands
func (c *Container) LoadRegistry(ctx context.Context) (*domain.Registry, error) {
	return c.store.Load(ctx)
}

// resolveProject picks the project named explicitly, or infers it from the
// current directory by walking up to the nearest project file, or falls back
// to the only registered project.
func resolveProject(reg *domain.Registry, name string) (*domain.Project, error) {
	if name != "" {
		p := reg.ProjectByName(name)
		if p == nil {
			return nil, fmt.Errorf("project %s: %w", name, domain.ErrProjectNotFound)
		}
		return p, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		if root := config.FindProjectRoot(cwd); root != "" {
			if p := projectForRoot(reg, root); p != nil {
				return p, nil
			}
		}
	}

	if len(reg.Projects) == 1 {
		return &reg.Projects[0], nil
	}

	return nil, fmt.Errorf("cannot determine project, pass --project")
}

// projectForRoot matches a directory containing a project file against the
// registry, either by root path (main checkout) or by the configured project
// name (worktrees carry the project file too, under a different path).
func projectForRoot(reg *domain.Registry, root string) *domain.Project {
	for i := range reg.Projects {
		if reg.Projects[i].Root == root {
			return &reg.Projects[i]
		}
	}

	pf, err := config.LoadProjectFile(root)
	if err != nil || pf.Project.Name == "" {
		return nil
	}
	return reg.ProjectByName(pf.Project.Name)
}

// findWorkspace resolves a workspace by name across all projects. Ambiguous
// names need the project/name qualified form.
func findWorkspace(reg *domain.Registry, name string) (*domain.Workspace, error) {
	var matches []*domain.Workspace
	for _, ws := range reg.Workspaces {
		if ws.Name == name || ws.Project+"/"+ws.Name == name {
			matches = append(matches, ws)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("workspace %s: %w", name, domain.ErrWorkspaceNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("workspace name %s is ambiguous, use <project>/<name>", name)
	}
}

// findTask resolves a confirmed task by id
func findTask(reg *domain.Registry, id string) (*domain.Task, error) {
	t := reg.TaskByID(id)
	if t == nil {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrTaskNotFound)
	}
	return t, nil
}
