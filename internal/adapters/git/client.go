package git

import (
	"context"

	"workspace/internal/domain"
	"workspace/internal/ports"
)

// CLIClient implements ports.GitClient using local git commands
type CLIClient struct{}

// Verify interface compliance at compile time
var _ ports.GitClient = (*CLIClient)(nil)

// NewCLIClient creates a new CLIClient
func NewCLIClient() *CLIClient {
	return &CLIClient{}
}

// WorktreeManager methods

// CreateWorktree implements WorktreeManager.CreateWorktree
func (c *CLIClient) CreateWorktree(repoPath, worktreePath, branch, baseBranch string) error {
	return createWorktree(repoPath, worktreePath, branch, baseBranch)
}

// ListWorktrees implements WorktreeManager.ListWorktrees
func (c *CLIClient) ListWorktrees(repoPath string) ([]ports.Worktree, error) {
	infos, err := listWorktrees(repoPath)
	if err != nil {
		return nil, err
	}

	worktrees := make([]ports.Worktree, len(infos))
	for i, info := range infos {
		worktrees[i] = ports.Worktree{
			Branch: info.branch,
			Path:   info.path,
		}
	}
	return worktrees, nil
}

// RemoveWorktree implements WorktreeManager.RemoveWorktree
func (c *CLIClient) RemoveWorktree(repoPath, worktreePath string, force bool) error {
	return removeWorktree(repoPath, worktreePath, force)
}

// GitStatsProvider methods

// FetchGitStats implements GitStatsProvider.FetchGitStats
func (c *CLIClient) FetchGitStats(ctx context.Context, worktreePath string) (*domain.GitStats, error) {
	return fetchGitStats(ctx, worktreePath)
}
