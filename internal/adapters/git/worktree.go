package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"workspace/internal/logging"
)

// branchExists checks if a branch exists locally
func branchExists(repoPath, branch string) bool {
	cmd := exec.Command("git", "show-ref", "--verify", fmt.Sprintf("refs/heads/%s", branch))
	cmd.Dir = repoPath

	output, err := cmd.Output()
	return err == nil && len(output) > 0
}

// createBranch creates a local branch, forked from base when base is
// non-empty and from the current HEAD otherwise
func createBranch(repoPath, branch, base string) error {
	args := []string{"branch", branch}
	if base != "" {
		args = append(args, base)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	if output, err := cmd.CombinedOutput(); err != nil {
		logging.Logger.Error("Git branch failed", "branch", branch, "base", base, "output", string(output))
		return fmt.Errorf("failed to create branch %s: %w\nOutput: %s", branch, err, string(output))
	}

	logging.Logger.Debug("Created branch", "branch", branch, "base", base)
	return nil
}

// createWorktree creates a worktree at worktreePath checked out on branch.
// The branch is created first when it does not exist yet, forked from
// baseBranch when given.
func createWorktree(repoPath, worktreePath, branch, baseBranch string) error {
	logging.Logger.Info("Creating worktree",
		"repo_path", repoPath, "worktree_path", worktreePath, "branch", branch, "base_branch", baseBranch)

	// Ensure the parent directory exists so git can create the worktree
	worktreeBase := filepath.Dir(worktreePath)
	if err := os.MkdirAll(worktreeBase, 0755); err != nil {
		return fmt.Errorf("failed to create worktree base directory: %w", err)
	}

	if !branchExists(repoPath, branch) {
		if err := createBranch(repoPath, branch, baseBranch); err != nil {
			return err
		}
	}

	cmd := exec.Command("git", "worktree", "add", worktreePath, branch)
	cmd.Dir = repoPath

	if output, err := cmd.CombinedOutput(); err != nil {
		logging.Logger.Error("Git worktree add failed", "error", err, "output", string(output))
		return fmt.Errorf("failed to create worktree: %w\nOutput: %s", err, string(output))
	}

	logging.Logger.Info("Git worktree created", "path", worktreePath, "branch", branch)
	return nil
}

// removeWorktree removes the worktree at worktreePath. With force the
// worktree is removed even when it carries uncommitted changes.
func removeWorktree(repoPath, worktreePath string, force bool) error {
	logging.Logger.Info("Removing worktree",
		"repo_path", repoPath, "worktree_path", worktreePath, "force", force)

	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, worktreePath)

	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	if output, err := cmd.CombinedOutput(); err != nil {
		logging.Logger.Error("Git worktree remove failed", "error", err, "output", string(output))
		return fmt.Errorf("failed to remove worktree: %w\nOutput: %s", err, string(output))
	}

	logging.Logger.Info("Git worktree removed", "path", worktreePath)
	return nil
}

// worktreeInfo holds one parsed entry of git worktree list --porcelain
type worktreeInfo struct {
	branch string
	path   string
}

// parseWorktreeList parses git worktree list --porcelain output.
// Entries without a branch line (detached or bare) are skipped. Branch
// names are shortened to their last path segment.
func parseWorktreeList(output string) []worktreeInfo {
	var worktrees []worktreeInfo
	var current worktreeInfo

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.path != "" && current.branch != "" {
				worktrees = append(worktrees, current)
			}
			current = worktreeInfo{path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			parts := strings.Split(ref, "/")
			current.branch = parts[len(parts)-1]
		}
	}

	if current.path != "" && current.branch != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees
}

// listWorktrees lists all worktrees of the repository in listing order
func listWorktrees(repoPath string) ([]worktreeInfo, error) {
	logging.Logger.Debug("Listing worktrees", "repo_path", repoPath)

	cmd := exec.Command("git", "worktree", "list", "--porcelain")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	worktrees := parseWorktreeList(string(output))
	logging.Logger.Debug("Found worktrees", "count", len(worktrees))
	return worktrees, nil
}
