package cmd

// ProjectCmd manages registered projects
type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"add" help:"Register a project"`
	List   ProjectListCmd   `cmd:"list" help:"List registered projects" default:"1"`
	Remove ProjectRemoveCmd `cmd:"remove" aliases:"rm" help:"Remove a project from the registry"`
}
