package git

import (
	"errors"
	"strconv"
	"strings"

	"github.com/paneline/paneline/internal/models"
)

// ErrNoBranchHeader is returned when the status output carries no
// "# branch.head" line. Git emits one even for an empty repository, so its
// absence means the output cannot describe a well-formed repository.
var ErrNoBranchHeader = errors.New("no branch.head header in status output")

// Parse converts the output of `git status --porcelain=v2 --branch --ignored`
// plus a `git stash list` listing into a repository snapshot.
//
// Header lines (prefix "#") are matched by key, not position, so missing or
// reordered headers are fine: a repository with no upstream simply never sets
// one. Unknown header keys, malformed header values and unknown entry shapes
// are skipped; the only unrecoverable input is one without a branch head.
func Parse(statusText, stashText string) (*models.RepositoryState, error) {
	var (
		branch   models.BranchInfo
		files    models.FileSet
		haveHead bool
	)

	for _, line := range strings.Split(statusText, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			parseHeader(line, &branch, &haveHead)
			continue
		}
		classifyEntry(line, &files)
	}

	if !haveHead {
		return nil, ErrNoBranchHeader
	}

	return models.NewRepositoryState(branch, files, countStashes(stashText)), nil
}

// parseHeader extracts branch fields from a "# branch.<key> ..." line.
func parseHeader(line string, branch *models.BranchInfo, haveHead *bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return
	}

	switch fields[1] {
	case "branch.head":
		branch.Head = fields[2]
		*haveHead = true
	case "branch.upstream":
		branch.Upstream = fields[2]
	case "branch.ab":
		// A malformed value leaves AheadBehind unset, same as a missing
		// header.
		branch.AheadBehind = parseAheadBehind(fields[2:])
	}
	// Unrecognized keys (branch.oid and anything newer) are skipped.
}

// parseAheadBehind parses the "+<ahead> -<behind>" value of a branch.ab
// line, returning nil unless both counts are present and well-formed.
func parseAheadBehind(tokens []string) *models.AheadBehind {
	if len(tokens) != 2 || !strings.HasPrefix(tokens[0], "+") || !strings.HasPrefix(tokens[1], "-") {
		return nil
	}

	ahead, err := strconv.Atoi(tokens[0][1:])
	if err != nil {
		return nil
	}
	behind, err := strconv.Atoi(tokens[1][1:])
	if err != nil {
		return nil
	}

	return &models.AheadBehind{Ahead: ahead, Behind: behind}
}

// classifyEntry routes one non-header status line into the file buckets.
// Ordinary changed entries ("1 XY ... path") can land in both staged and
// unstaged when both sides of the XY code are set. Lines of any other shape
// (renames, unmerged entries, future formats) are left unclassified.
func classifyEntry(line string, files *models.FileSet) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}

	switch fields[0] {
	case "1":
		if len(fields) < 3 || len(fields[1]) != 2 {
			return
		}
		xy := fields[1]
		path := fields[len(fields)-1]
		if xy[0] != '.' {
			files.Staged = append(files.Staged, path)
		}
		if xy[1] != '.' {
			files.Unstaged = append(files.Unstaged, path)
		}
	case "?":
		files.Untracked = append(files.Untracked, fields[1])
	case "!":
		files.Ignored = append(files.Ignored, fields[1])
	}
}

// countStashes counts stash entries: one per non-empty line. A terminal
// newline splits into a trailing empty element, which must not count.
func countStashes(stashText string) int {
	count := 0
	for _, line := range strings.Split(stashText, "\n") {
		if line != "" {
			count++
		}
	}
	return count
}
