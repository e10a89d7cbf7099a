package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
)

// statsFetchLimit caps concurrent git stat fetches across workspaces
const statsFetchLimit = 4

// statsFetchTimeout bounds a single git stats fetch
const statsFetchTimeout = 3 * time.Second

// WorkspaceStatus is one dashboard row: the workspace, the latest agent
// observation, and optionally its git stats. Stats stay nil when not
// requested or when fetching failed.
type WorkspaceStatus struct {
	Observed  domain.ObservedStatus
	Stats     *domain.GitStats
	Workspace *domain.Workspace
}

// StatusService assembles workspace status rows for the list, status, and
// watch surfaces.
type StatusService struct {
	git     ports.GitStatsProvider
	monitor *MonitorService
}

// NewStatusService creates a new StatusService
func NewStatusService(git ports.GitStatsProvider, monitor *MonitorService) *StatusService {
	return &StatusService{
		git:     git,
		monitor: monitor,
	}
}

// Snapshot observes every workspace without touching persisted process
// state. Observation failures leave the row's Observed empty and are logged.
func (s *StatusService) Snapshot(ctx context.Context, reg *domain.Registry, withStats bool) []WorkspaceStatus {
	rows := make([]WorkspaceStatus, 0, len(reg.Workspaces))

	for _, ws := range reg.Workspaces {
		row := WorkspaceStatus{Workspace: ws}
		obs, err := s.monitor.Observe(ws)
		if err != nil {
			logging.Logger.Warn("Failed to observe workspace", "workspace", ws.Name, "error", err)
		} else {
			row.Observed = obs
		}
		rows = append(rows, row)
	}

	if withStats {
		s.fetchStats(ctx, rows)
	}
	return rows
}

// Sweep advances every workspace's persisted process state and returns the
// resulting rows plus the workspaces freshly observed as completed on this
// pass. The caller owns persisting the mutated registry.
func (s *StatusService) Sweep(ctx context.Context, reg *domain.Registry, withStats bool) ([]WorkspaceStatus, []*domain.Workspace) {
	rows := make([]WorkspaceStatus, 0, len(reg.Workspaces))
	var completed []*domain.Workspace

	for _, ws := range reg.Workspaces {
		row := WorkspaceStatus{Workspace: ws}

		if ws.TmuxSession != "" {
			prev := ws.ClaudeProcess.Status
			obs, err := s.monitor.UpdateStatus(ws)
			if err != nil {
				logging.Logger.Warn("Status update failed", "workspace", ws.Name, "error", err)
			} else {
				row.Observed = obs
				if obs == domain.ObservedCompleted && prev != domain.ProcessCompleted {
					completed = append(completed, ws)
				}
			}
		}

		rows = append(rows, row)
	}

	if withStats {
		s.fetchStats(ctx, rows)
	}
	return rows, completed
}

// fetchStats fills in git stats for every row concurrently. Failures are
// logged and leave the row without stats.
func (s *StatusService) fetchStats(ctx context.Context, rows []WorkspaceStatus) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statsFetchLimit)

	for i := range rows {
		if rows[i].Workspace.Path == "" {
			continue
		}
		i := i
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, statsFetchTimeout)
			defer cancel()

			stats, err := s.git.FetchGitStats(fetchCtx, rows[i].Workspace.Path)
			if err != nil {
				logging.Logger.Warn("Failed to fetch git stats",
					"workspace", rows[i].Workspace.Name, "error", err)
				return nil
			}
			rows[i].Stats = stats
			return nil
		})
	}

	// Workers never return errors; Wait just joins them
	_ = g.Wait()
}
