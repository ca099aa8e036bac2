package models

// Status classifies a repository snapshot as a whole.
type Status int

const (
	StatusClean Status = iota
	StatusDirty
	StatusBroken
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusDirty:
		return "dirty"
	case StatusBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// AheadBehind holds the commit divergence between the local branch tip and
// its upstream. The two counts always come from the same branch.ab header,
// so they are carried together: a branch either has both or neither.
type AheadBehind struct {
	Ahead  int
	Behind int
}

// BranchInfo describes the checked-out branch at probe time.
type BranchInfo struct {
	Head        string // local branch name, or a symbolic marker like "(detached)"
	Upstream    string // remote tracking ref, empty when none is configured
	AheadBehind *AheadBehind
}

// FileSet groups changed paths by where the change lives. A partially staged
// file appears in both Staged and Unstaged.
type FileSet struct {
	Staged    []string
	Unstaged  []string
	Untracked []string
	Ignored   []string
}

// RepositoryState is one immutable snapshot of a repository, built once per
// render tick and discarded after the fragments are produced.
type RepositoryState struct {
	Branch     BranchInfo
	Files      FileSet
	StashCount int
	Status     Status
}

// NewRepositoryState assembles a snapshot and derives its status: clean when
// nothing is staged or unstaged, dirty otherwise.
func NewRepositoryState(branch BranchInfo, files FileSet, stashCount int) *RepositoryState {
	status := StatusClean
	if len(files.Staged) > 0 || len(files.Unstaged) > 0 {
		status = StatusDirty
	}

	return &RepositoryState{
		Branch:     branch,
		Files:      files,
		StashCount: stashCount,
		Status:     status,
	}
}

// BrokenState returns the marker snapshot for a repository whose state could
// not be fully constructed. It carries no branch or file data; consumers must
// not read anything but Status from it.
func BrokenState() *RepositoryState {
	return &RepositoryState{Status: StatusBroken}
}
