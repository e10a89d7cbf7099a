package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"workspace/internal/config"
	"workspace/internal/domain"
)

// ProjectAddCmd registers a project
type ProjectAddCmd struct {
	Init bool   `help:"Write a skeleton project file when the root has none"`
	Name string `arg:"" help:"Name of the project"`
	Root string `arg:"" optional:"" help:"Path to the main checkout (defaults to the current directory)"`
}

// Run executes the project add command
func (p *ProjectAddCmd) Run(cli *CLI) error {
	root := p.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}
		root = cwd
	}

	root, err := filepath.Abs(config.ExpandPath(root))
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("project root is not a directory: %s", root)
	}

	if err := p.ensureProjectFile(root); err != nil {
		return err
	}

	err = cli.Container.WithRegistry(context.Background(), func(reg *domain.Registry) error {
		if reg.ProjectByName(p.Name) != nil {
			return fmt.Errorf("project %s is already registered", p.Name)
		}
		reg.AddProject(domain.Project{Name: p.Name, Root: root})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	fmt.Printf("Project '%s' registered at %s\n", p.Name, root)
	return nil
}

// ensureProjectFile verifies the root carries a project file, writing a
// skeleton when --init was given
func (p *ProjectAddCmd) ensureProjectFile(root string) error {
	path := filepath.Join(root, config.ProjectFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if !p.Init {
		return fmt.Errorf("no %s in %s (pass --init to create one)", config.ProjectFileName, root)
	}

	pf := &config.ProjectFile{
		Project: config.ProjectSection{Name: p.Name},
		Infrastructure: config.InfrastructureConfig{
			Start: "echo 'no infrastructure start command configured'",
			Stop:  "echo 'no infrastructure stop command configured'",
		},
	}
	if err := config.SaveProjectFile(pf, root); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
