package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"workspace/test/integration/harness"
)

// TestWorkspaceLifecycle walks a workspace through create, list, run,
// infrastructure start/stop, and destroy against a real git repo. Session
// creation is best-effort, so the test passes with or without tmux installed.
func TestWorkspaceLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "project", "add", "demo", git.ClonePath, "--init")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "create", "feature", "--project", "demo", "--worktree-name", "fix-auth")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Workspace 'feature' created at")

	worktreePath := filepath.Join(git.WorktreesDir(), "demo-fix-auth")
	if _, err := os.Stat(worktreePath); err != nil {
		t.Fatalf("Expected worktree at %s: %v", worktreePath, err)
	}

	result = harness.RunCommand(t, env, "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "demo")
	harness.AssertStdoutContains(t, result, "feature")
	harness.AssertStdoutContains(t, result, "fix-auth")

	result = harness.RunCommand(t, env, "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var rows []map[string]any
	harness.AssertValidJSON(t, result, &rows)
	if len(rows) != 1 {
		t.Errorf("Expected 1 workspace in JSON output, got %d", len(rows))
	}

	// run executes in the worktree directory
	result = harness.RunCommand(t, env, "run", "feature", "pwd")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, worktreePath)

	// The --init skeleton uses echo placeholders, so start/stop succeed
	result = harness.RunCommand(t, env, "start", "feature")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Infrastructure started for workspace 'feature'")

	result = harness.RunCommand(t, env, "stop", "feature")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Infrastructure stopped for workspace 'feature'")

	// Registered workspaces block project removal
	result = harness.RunCommand(t, env, "project", "remove", "demo")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "destroy them first")

	result = harness.RunCommand(t, env, "destroy", "feature", "--force")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Workspace 'feature' destroyed")

	if _, err := os.Stat(worktreePath); !os.IsNotExist(err) {
		t.Errorf("Expected worktree %s to be removed, got err=%v", worktreePath, err)
	}

	result = harness.RunCommand(t, env, "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No workspaces")
}

func TestWorkspaceCreateFromBranch(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CreateBranch("develop")

	result := harness.RunCommand(t, env, "project", "add", "demo", git.ClonePath, "--init")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "create", "hotfix", "--project", "demo",
		"--branch", "develop", "--worktree-name", "urgent")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Workspace 'hotfix' created at")

	result = harness.RunCommand(t, env, "destroy", "hotfix", "--force")
	harness.AssertSuccess(t, result)
}

func TestWorkspaceCreateErrors(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup)
		args         func(git *harness.TestGitSetup) []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "create without project fails",
			args: func(git *harness.TestGitSetup) []string {
				return []string{"create", "feature", "--project", "ghost"}
			},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "not found")
			},
		},
		{
			name: "create duplicate workspace fails",
			setup: func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup) {
				result := harness.RunCommand(t, env, "project", "add", "demo", git.ClonePath, "--init")
				harness.AssertSuccess(t, result)
				result = harness.RunCommand(t, env, "create", "feature", "--project", "demo")
				harness.AssertSuccess(t, result)
			},
			args: func(git *harness.TestGitSetup) []string {
				return []string{"create", "feature", "--project", "demo"}
			},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "already exists")
			},
		},
		{
			name: "destroy unknown workspace fails",
			setup: func(t *testing.T, env *harness.TestEnvironment, git *harness.TestGitSetup) {
				result := harness.RunCommand(t, env, "project", "add", "demo", git.ClonePath, "--init")
				harness.AssertSuccess(t, result)
			},
			args: func(git *harness.TestGitSetup) []string {
				return []string{"destroy", "ghost", "--force"}
			},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			git := harness.NewTestGitSetup(t)

			if tt.setup != nil {
				tt.setup(t, env, git)
			}

			result := harness.RunCommand(t, env, tt.args(git)...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
