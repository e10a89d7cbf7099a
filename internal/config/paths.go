package config

import (
	"os"
	"path/filepath"
)

// Home returns WORKSPACE_HOME or ~/.workspace default
func Home() string {
	home := os.Getenv("WORKSPACE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".workspace"
		}
		return filepath.Join(homeDir, ".workspace")
	}
	return ExpandPath(home)
}

// DBPath returns $WORKSPACE_HOME/state.db
func DBPath() string {
	return filepath.Join(Home(), "state.db")
}

// LockPath returns $WORKSPACE_HOME/registry.lock
func LockPath() string {
	return filepath.Join(Home(), "registry.lock")
}

// TasksDir returns $WORKSPACE_HOME/tasks, where task plan files live
func TasksDir() string {
	return filepath.Join(Home(), "tasks")
}

// SessionsDir returns $WORKSPACE_HOME/sessions, where captured pane output lives
func SessionsDir() string {
	return filepath.Join(Home(), "sessions")
}

// SSHDir returns $WORKSPACE_HOME/ssh, holding the serve host key
func SSHDir() string {
	return filepath.Join(Home(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
