package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"workspace/internal/config"
	"workspace/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Create  CreateCmd  `cmd:"create" help:"Create a workspace with its own worktree and agent session"`
	List    ListCmd    `cmd:"list" help:"List workspaces" default:"1"`
	Switch  SwitchCmd  `cmd:"switch" help:"Switch to a workspace, recreating its session if needed"`
	Attach  AttachCmd  `cmd:"attach" help:"Attach to a workspace's tmux session"`
	Start   StartCmd   `cmd:"start" help:"Start a workspace's infrastructure"`
	Stop    StopCmd    `cmd:"stop" help:"Stop a workspace's infrastructure"`
	Run     RunCmd     `cmd:"run" help:"Run a command inside a workspace directory"`
	Destroy DestroyCmd `cmd:"destroy" help:"Destroy a workspace and remove its worktree"`
	Status  StatusCmd  `cmd:"status" help:"Show agent status for one or all workspaces"`
	Watch   WatchCmd   `cmd:"watch" help:"Live dashboard of all workspaces"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the read-only dashboard over SSH"`
	Project ProjectCmd `cmd:"project" help:"Manage registered projects"`
	Task    TaskCmd    `cmd:"task" help:"Plan and orchestrate multi-step tasks"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and wires the container
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json >
	// defaults. A flag still at its default only yields when no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("WORKSPACE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("WORKSPACE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and append to the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("WORKSPACE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WORKSPACE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("WORKSPACE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so adapters never see a
	// nil logger
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
