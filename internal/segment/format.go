package segment

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paneline/paneline/internal/models"
)

// Palette maps style tags to tmux colour names ("green", "colour208", ...).
type Palette map[models.StyleTag]string

// DefaultPalette returns the stock tag-to-colour mapping.
func DefaultPalette() Palette {
	return Palette{
		models.StyleStatusClean:   "green",
		models.StyleStatusDirty:   "yellow",
		models.StyleStatusBroken:  "red",
		models.StyleStatusDefault: "default",
		models.StyleBranchName:    "cyan",
		models.StyleFileCounts:    "magenta",
		models.StyleStashCount:    "blue",
	}
}

// FormatTmux joins fragments into one tmux status-line string. Each fragment
// is wrapped in a #[fg=...] directive when its tag resolves in the palette
// and left bare otherwise; separator glyphs go between fragments that
// request one.
func FormatTmux(frags []models.Fragment, palette Palette, separator string) string {
	var b strings.Builder
	for _, frag := range frags {
		if colour, ok := palette[frag.Style]; ok && colour != "" {
			b.WriteString("#[fg=" + colour + "]")
			b.WriteString(frag.Text)
			b.WriteString("#[default]")
		} else {
			b.WriteString(frag.Text)
		}
		if frag.DrawSeparator {
			b.WriteString(separator)
		}
	}
	return b.String()
}

var previewStyles = map[models.StyleTag]lipgloss.Style{
	models.StyleStatusClean:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	models.StyleStatusDirty:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	models.StyleStatusBroken: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	models.StyleBranchName:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	models.StyleFileCounts:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	models.StyleStashCount:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// FormatPreview renders fragments with terminal colours for viewing outside
// tmux, e.g. in the watch view.
func FormatPreview(frags []models.Fragment, separator string) string {
	var b strings.Builder
	for _, frag := range frags {
		if style, ok := previewStyles[frag.Style]; ok {
			b.WriteString(style.Render(frag.Text))
		} else {
			b.WriteString(frag.Text)
		}
		if frag.DrawSeparator {
			b.WriteString(separator)
		}
	}
	return b.String()
}
