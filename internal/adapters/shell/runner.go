package shell

import (
	"fmt"
	"os"
	"os/exec"

	"workspace/internal/logging"
	"workspace/internal/ports"
)

// OSRunner executes commands through the operating system shell
type OSRunner struct{}

// Ensure OSRunner implements the CommandRunner interface
var _ ports.CommandRunner = (*OSRunner)(nil)

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// RunShell runs command through `sh -c` in dir and returns its combined output
func (r *OSRunner) RunShell(dir, command string) ([]byte, error) {
	logging.Logger.Debug("Running shell command", "dir", dir, "command", command)

	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}

// RunInteractive runs argv in dir with the caller's terminal attached
func (r *OSRunner) RunInteractive(dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no command given")
	}

	logging.Logger.Debug("Running interactive command", "dir", dir, "command", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
