package ports

import (
	"context"

	"workspace/internal/domain"
)

// Worktree is one entry from the repository's worktree listing
type Worktree struct {
	Branch string
	Path   string
}

// WorktreeManager handles worktree lifecycle
type WorktreeManager interface {
	// CreateWorktree adds a worktree at worktreePath on a new branch,
	// optionally forked from baseBranch
	CreateWorktree(repoPath, worktreePath, branch, baseBranch string) error
	// ListWorktrees returns the repository's worktrees in listing order
	ListWorktrees(repoPath string) ([]Worktree, error)
	// RemoveWorktree removes a worktree; force discards local changes
	RemoveWorktree(repoPath, worktreePath string, force bool) error
}

// GitStatsProvider provides git statistics for display
type GitStatsProvider interface {
	FetchGitStats(ctx context.Context, worktreePath string) (*domain.GitStats, error)
}

// GitClient is the composite interface
type GitClient interface {
	GitStatsProvider
	WorktreeManager
}
