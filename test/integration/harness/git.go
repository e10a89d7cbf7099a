package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup is a throwaway git project: a bare repository standing in for
// origin, plus a clone acting as the project's main checkout. Worktrees the
// CLI allocates for this clone land in the sibling worktrees/ directory.
type TestGitSetup struct {
	ClonePath string
	tb        testing.TB
}

// NewTestGitSetup builds the bare origin, clones it, and pushes an initial
// commit on main so branch and worktree operations have something to fork
// from.
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	base := tb.TempDir()
	origin := filepath.Join(base, "origin.git")
	clone := filepath.Join(base, "clone")

	git(tb, base, "init", "--bare", origin)
	git(tb, base, "clone", origin, clone)
	git(tb, clone, "config", "user.email", "test@example.com")
	git(tb, clone, "config", "user.name", "Test User")

	readme := filepath.Join(clone, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repo\n"), 0644); err != nil {
		tb.Fatalf("writing readme: %v", err)
	}
	git(tb, clone, "add", "README.md")
	git(tb, clone, "commit", "-m", "Initial commit")

	// Older git versions default the initial branch to master
	git(tb, clone, "branch", "-M", "main")
	git(tb, clone, "push", "-u", "origin", "main")

	return &TestGitSetup{ClonePath: clone, tb: tb}
}

// CreateBranch adds a local branch to the clone
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	git(g.tb, g.ClonePath, "branch", name)
}

// WorktreesDir returns the directory the CLI allocates worktrees into for
// this clone
func (g *TestGitSetup) WorktreesDir() string {
	return filepath.Join(filepath.Dir(g.ClonePath), "worktrees")
}

func git(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	if output, err := cmd.CombinedOutput(); err != nil {
		tb.Fatalf("git %v in %s: %v\n%s", args, dir, err, output)
	}
}
