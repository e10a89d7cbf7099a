package domain

// Project is a repository registered with the workspace manager. Projects are
// loaded from the registry and treated as immutable for the span of a command.
type Project struct {
	Name string
	Root string // absolute path to the main repository checkout
}
