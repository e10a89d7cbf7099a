package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own
// WORKSPACE_HOME.
type TestEnvironment struct {
	WorkspaceHome string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp
// WORKSPACE_HOME. The temp directory is automatically cleaned up when the
// test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		WorkspaceHome: tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out WORKSPACE_* variables and sets:
//   - WORKSPACE_HOME to the temp directory
//   - WORKSPACE_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["WORKSPACE_HOME"] = true
	overrideKeys["WORKSPACE_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing WORKSPACE_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "WORKSPACE_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"WORKSPACE_HOME="+e.WorkspaceHome,
		"WORKSPACE_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test registry database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.WorkspaceHome, "state.db")
}

// TasksDir returns the path to the task plan directory.
func (e *TestEnvironment) TasksDir() string {
	return filepath.Join(e.WorkspaceHome, "tasks")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
