// Package segment turns a repository snapshot into the ordered list of
// status-line fragments and formats them for a host renderer.
package segment

import (
	"strconv"
	"strings"

	"github.com/paneline/paneline/internal/models"
)

// Glyphs are the symbols the renderer prefixes to each fragment.
type Glyphs struct {
	Clean     string
	Dirty     string
	Broken    string
	Unknown   string
	Stash     string
	Staged    string
	Unstaged  string
	Untracked string
	CountJoin string
}

// DefaultGlyphs returns the stock glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Clean:     "✔",
		Dirty:     "⨀",
		Broken:    "✘",
		Unknown:   "⁉",
		Stash:     "⚑",
		Staged:    "⚫",
		Unstaged:  "±",
		Untracked: "…",
		CountJoin: "╱",
	}
}

// Options control what Render emits.
type Options struct {
	// IncludeStatusGlyph emits a leading clean/dirty glyph fragment.
	IncludeStatusGlyph bool
	// CombineFileCounts joins the per-bucket counts into one fragment
	// instead of emitting them separately.
	CombineFileCounts bool
	Glyphs            Glyphs
}

// DefaultOptions returns the options used when no configuration overrides
// them.
func DefaultOptions() Options {
	return Options{
		IncludeStatusGlyph: true,
		CombineFileCounts:  true,
		Glyphs:             DefaultGlyphs(),
	}
}

// Render maps a snapshot to an ordered fragment list: status glyph, branch,
// stash count, file counts. It is total; a broken snapshot renders as a
// single broken glyph rather than propagating anything to the display layer.
// Every fragment but the last requests an inner separator.
func Render(state *models.RepositoryState, opts Options) []models.Fragment {
	if state == nil {
		return nil
	}

	g := opts.Glyphs
	if g == (Glyphs{}) {
		g = DefaultGlyphs()
	}

	if state.Status == models.StatusBroken {
		// A broken snapshot carries no reliable branch or file data.
		return []models.Fragment{{Text: g.Broken, Style: models.StyleStatusBroken}}
	}

	var frags []models.Fragment

	if opts.IncludeStatusGlyph {
		frags = append(frags, statusFragment(state.Status, g))
	}

	frags = append(frags, models.Fragment{
		Text:  state.Branch.Head,
		Style: models.StyleBranchName,
	})

	if state.StashCount > 0 {
		frags = append(frags, models.Fragment{
			Text:  g.Stash + strconv.Itoa(state.StashCount),
			Style: models.StyleStashCount,
		})
	}

	frags = append(frags, fileCountFragments(state.Files, opts.CombineFileCounts, g)...)

	for i := range frags {
		frags[i].DrawSeparator = i < len(frags)-1
	}
	return frags
}

func statusFragment(status models.Status, g Glyphs) models.Fragment {
	switch status {
	case models.StatusClean:
		return models.Fragment{Text: g.Clean, Style: models.StyleStatusClean}
	case models.StatusDirty:
		return models.Fragment{Text: g.Dirty, Style: models.StyleStatusDirty}
	case models.StatusBroken:
		return models.Fragment{Text: g.Broken, Style: models.StyleStatusBroken}
	default:
		return models.Fragment{Text: g.Unknown, Style: models.StyleStatusDefault}
	}
}

// fileCountFragments emits one count per non-empty bucket among staged,
// unstaged and untracked. Ignored paths are tracked but never rendered.
func fileCountFragments(files models.FileSet, combine bool, g Glyphs) []models.Fragment {
	var parts []string
	if n := len(files.Staged); n > 0 {
		parts = append(parts, g.Staged+strconv.Itoa(n))
	}
	if n := len(files.Unstaged); n > 0 {
		parts = append(parts, g.Unstaged+strconv.Itoa(n))
	}
	if n := len(files.Untracked); n > 0 {
		parts = append(parts, g.Untracked+strconv.Itoa(n))
	}
	if len(parts) == 0 {
		return nil
	}

	if combine {
		return []models.Fragment{{
			Text:  strings.Join(parts, g.CountJoin),
			Style: models.StyleFileCounts,
		}}
	}

	frags := make([]models.Fragment, 0, len(parts))
	for _, part := range parts {
		frags = append(frags, models.Fragment{Text: part, Style: models.StyleFileCounts})
	}
	return frags
}
