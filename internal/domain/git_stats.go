package domain

import "time"

// GitStats is a point-in-time summary of a worktree's divergence from its
// upstream plus its uncommitted changes. Rows without stats carry a nil
// pointer, so consumers never see half-fetched values.
type GitStats struct {
	Additions    int
	Ahead        int
	Behind       int
	ChangedFiles int
	Deletions    int
	Error        error
	FetchedAt    time.Time
}

// Clean reports whether the worktree is level with its upstream and has no
// uncommitted changes
func (s *GitStats) Clean() bool {
	return s.Ahead == 0 && s.Behind == 0 && s.ChangedFiles == 0
}
