package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// ProjectListCmd lists registered projects
type ProjectListCmd struct{}

// Run executes the project list command
func (p *ProjectListCmd) Run(cli *CLI) error {
	reg, err := cli.Container.LoadRegistry(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Projects) == 0 {
		fmt.Println("No projects registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROOT\tWORKSPACES")
	for _, project := range reg.Projects {
		fmt.Fprintf(w, "%s\t%s\t%d\n", project.Name, project.Root, len(reg.ProjectWorkspaces(project.Name)))
	}
	return w.Flush()
}
