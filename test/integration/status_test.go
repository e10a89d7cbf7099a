package integration_test

import (
	"testing"

	"workspace/test/integration/harness"
)

func TestStatusCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "status with empty registry",
			args:         []string{"status"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No workspaces")
			},
		},
		{
			name:         "status sweep with empty registry",
			args:         []string{"status", "--all"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No newly completed workspaces")
			},
		},
		{
			name:         "status for unknown workspace fails",
			args:         []string{"status", "ghost"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "not found")
			},
		},
		{
			name:         "list with empty registry",
			args:         []string{"list"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No workspaces")
			},
		},
		{
			name:         "version flag",
			args:         []string{"--version"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "workspace")
			},
		},
		{
			name:         "unknown command fails",
			args:         []string{"frobnicate"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

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

// TestStatusDetail inspects a single workspace created against a real repo.
func TestStatusDetail(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "project", "add", "demo", git.ClonePath, "--init")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "create", "feature", "--project", "demo", "--worktree-name", "fix-auth")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "status", "feature")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Workspace: feature")
	harness.AssertStdoutContains(t, result, "Project: demo")
	harness.AssertStdoutContains(t, result, "Worktree: fix-auth")
	harness.AssertStdoutContains(t, result, "Infrastructure: down")

	// Qualified name resolves the same workspace
	result = harness.RunCommand(t, env, "status", "demo/feature")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Workspace: feature")

	result = harness.RunCommand(t, env, "destroy", "feature", "--force")
	harness.AssertSuccess(t, result)
}
