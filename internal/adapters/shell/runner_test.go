package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShell_CapturesOutput(t *testing.T) {
	runner := NewOSRunner()

	output, err := runner.RunShell(t.TempDir(), "echo hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(output))
}

func TestRunShell_RunsInDir(t *testing.T) {
	dir := t.TempDir()
	runner := NewOSRunner()

	output, err := runner.RunShell(dir, "pwd")

	require.NoError(t, err)
	// Resolve symlinks so the comparison survives /tmp -> /private/tmp setups
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(string(output)))
}

func TestRunShell_FailureIncludesOutput(t *testing.T) {
	runner := NewOSRunner()

	output, err := runner.RunShell(t.TempDir(), "echo boom >&2; exit 1")

	require.Error(t, err)
	assert.Contains(t, string(output), "boom")
}

func TestRunInteractive_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	runner := NewOSRunner()

	err := runner.RunInteractive(dir, []string{"touch", "marker"})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "marker"))
	assert.NoError(t, statErr)
}

func TestRunInteractive_EmptyCommand(t *testing.T) {
	runner := NewOSRunner()

	err := runner.RunInteractive(t.TempDir(), nil)

	require.Error(t, err)
}
