package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"workspace/internal/domain"
	"workspace/internal/logging"
)

// fetchGitStats gathers the divergence and working-tree numbers for a
// worktree. The three underlying git calls run concurrently; a failing call
// is non-fatal and leaves its fields zero.
func fetchGitStats(ctx context.Context, worktreePath string) (*domain.GitStats, error) {
	logging.Logger.Debug("Fetching git stats", "path", worktreePath)

	stats := &domain.GitStats{FetchedAt: time.Now()}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ahead, behind, err := aheadBehind(ctx, worktreePath)
		if err != nil {
			logging.Logger.Debug("Failed to get ahead/behind", "error", err)
			return nil
		}
		stats.Ahead = ahead
		stats.Behind = behind
		return nil
	})

	g.Go(func() error {
		additions, deletions, err := diffTotals(ctx, worktreePath)
		if err != nil {
			logging.Logger.Debug("Failed to get diff totals", "error", err)
			return nil
		}
		stats.Additions = additions
		stats.Deletions = deletions
		return nil
	})

	g.Go(func() error {
		count, err := changedFileCount(ctx, worktreePath)
		if err != nil {
			logging.Logger.Debug("Failed to count changed files", "error", err)
			return nil
		}
		stats.ChangedFiles = count
		return nil
	})

	if err := g.Wait(); err != nil {
		stats.Error = err
		return stats, err
	}

	return stats, nil
}

// gitOutput runs a git command in dir and returns its trimmed stdout
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return strings.TrimSpace(string(output)), nil
}

// aheadBehind returns how many commits the worktree's branch is ahead of
// and behind its upstream. Errors out when no upstream is configured.
func aheadBehind(ctx context.Context, path string) (ahead, behind int, err error) {
	out, err := gitOutput(ctx, path, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %s", out)
	}
	if ahead, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	if behind, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}
	return ahead, behind, nil
}

// diffTotals sums lines added and deleted against HEAD. Binary files show
// as "-" in numstat output and count zero.
func diffTotals(ctx context.Context, path string) (additions, deletions int, err error) {
	out, err := gitOutput(ctx, path, "diff", "--numstat", "HEAD")
	if err != nil {
		return 0, 0, err
	}

	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		if added, err := strconv.Atoi(parts[0]); err == nil {
			additions += added
		}
		if deleted, err := strconv.Atoi(parts[1]); err == nil {
			deletions += deleted
		}
	}
	return additions, deletions, nil
}

// changedFileCount counts modified and untracked paths in the worktree
func changedFileCount(ctx context.Context, path string) (int, error) {
	out, err := gitOutput(ctx, path, "status", "--porcelain")
	if err != nil {
		return 0, err
	}
	if out == "" {
		return 0, nil
	}
	return len(strings.Split(out, "\n")), nil
}
