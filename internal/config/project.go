package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ProjectFileName is the per-project configuration file looked up at the repo root
const ProjectFileName = ".workspace.toml"

// InfrastructureConfig holds the commands that bring a project's services up and down
type InfrastructureConfig struct {
	Start string `toml:"start"`
	Stop  string `toml:"stop"`
	Test  string `toml:"test,omitempty"`
}

// AgentConfig holds the agent commands configured for a project
type AgentConfig struct {
	Primary  string `toml:"primary,omitempty"`
	Readonly string `toml:"readonly,omitempty"`
}

// ProjectFile is the structure of .workspace.toml
type ProjectFile struct {
	Project        ProjectSection       `toml:"project"`
	Infrastructure InfrastructureConfig `toml:"infrastructure"`
	Agent          *AgentConfig         `toml:"agent,omitempty"`
}

// ProjectSection is the [project] table of .workspace.toml
type ProjectSection struct {
	Name string `toml:"name"`
}

// LoadProjectFile reads .workspace.toml from the given project directory.
// Missing infrastructure commands fall back to echo placeholders, matching
// the behavior callers rely on when a project has no services to manage.
func LoadProjectFile(projectDir string) (*ProjectFile, error) {
	path := filepath.Join(projectDir, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project config file not found at %s", path)
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var pf ProjectFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ProjectFileName, err)
	}

	if pf.Project.Name == "" {
		pf.Project.Name = filepath.Base(projectDir)
	}
	if pf.Infrastructure.Start == "" {
		pf.Infrastructure.Start = "echo 'No start command defined'"
	}
	if pf.Infrastructure.Stop == "" {
		pf.Infrastructure.Stop = "echo 'No stop command defined'"
	}

	return &pf, nil
}

// SaveProjectFile writes .workspace.toml into the given project directory
func SaveProjectFile(pf *ProjectFile, projectDir string) error {
	data, err := toml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}

	path := filepath.Join(projectDir, ProjectFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}

	return nil
}

// FindProjectRoot walks up from startDir looking for .workspace.toml.
// Returns an empty string when no project root is found.
func FindProjectRoot(startDir string) string {
	current := startDir
	for {
		if _, err := os.Stat(filepath.Join(current, ProjectFileName)); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
