package models

// StyleTag is the symbolic style category of a fragment. Resolving a tag to
// a concrete colour or attribute is the host's concern; the core only labels.
type StyleTag string

const (
	StyleStatusClean   StyleTag = "status-clean"
	StyleStatusDirty   StyleTag = "status-dirty"
	StyleStatusBroken  StyleTag = "status-broken"
	StyleStatusDefault StyleTag = "status-default"
	StyleBranchName    StyleTag = "branch-name"
	StyleFileCounts    StyleTag = "file-counts"
	StyleStashCount    StyleTag = "stash-count"
)

// Fragment is one renderable unit of the status line. DrawSeparator requests
// an inner separator after this fragment; the last fragment never sets it.
type Fragment struct {
	Text          string
	Style         StyleTag
	DrawSeparator bool
}
