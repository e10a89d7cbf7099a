package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test when the command exited non-zero
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"command exited %d\nstdout: %s\nstderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test when the command exited zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"command unexpectedly succeeded\nstdout: %s", result.Stdout)
}

// AssertStdoutContains checks for a fragment in the command's stdout
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"fragment %q missing from stdout: %s", expected, result.Stdout)
}

// AssertStdoutNotContains checks a fragment is absent from the command's stdout
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected,
		"fragment %q present in stdout: %s", unexpected, result.Stdout)
}

// AssertStderrContains checks for a fragment in the command's stderr
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"fragment %q missing from stderr: %s", expected, result.Stderr)
}

// AssertValidJSON decodes the command's stdout into target, failing on
// malformed output
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "stdout is not valid JSON: %s", result.Stdout)
}
