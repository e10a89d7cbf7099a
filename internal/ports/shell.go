package ports

// CommandRunner executes project commands inside a workspace directory
type CommandRunner interface {
	// RunShell runs command through the shell in dir and returns its
	// combined output
	RunShell(dir, command string) ([]byte, error)
	// RunInteractive runs argv in dir wired to the caller's terminal
	RunInteractive(dir string, argv []string) error
}
