package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paneline/paneline/internal/git"
	"github.com/paneline/paneline/internal/models"
	"github.com/paneline/paneline/internal/segment"
)

const refreshInterval = 2 * time.Second

type keyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var defaultKeys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type snapshotMsg struct {
	state *models.RepositoryState
	ok    bool
}

type tickMsg time.Time

// WatchModel is a live preview of the segment for one directory: it
// re-probes the repository on a timer and renders the same fragments tmux
// would receive.
type WatchModel struct {
	dir       string
	opts      segment.Options
	separator string
	probe     *git.Probe
	state     *models.RepositoryState
	ok        bool
	probed    bool
	width     int
	keys      keyMap
	help      help.Model
}

func NewWatchModel(dir string, opts segment.Options, separator string) WatchModel {
	return WatchModel{
		dir:       dir,
		opts:      opts,
		separator: separator,
		probe:     git.NewProbe(),
		keys:      defaultKeys,
		help:      help.New(),
	}
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func (m WatchModel) refresh() tea.Cmd {
	return func() tea.Msg {
		state, ok := m.probe.Snapshot(m.dir)
		return snapshotMsg{state, ok}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		}

	case snapshotMsg:
		m.state = msg.state
		m.ok = msg.ok
		m.probed = true

	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

func (m WatchModel) View() string {
	header := titleStyle.Render("paneline") + " " + dirStyle.Render(m.dir)

	var body string
	switch {
	case !m.probed:
		body = emptyStyle.Render("probing…")
	case !m.ok:
		body = emptyStyle.Render("no repository (segment hidden)")
	default:
		frags := segment.Render(m.state, m.opts)
		body = segment.FormatPreview(frags, m.separator)
	}

	return fmt.Sprintf("%s\n\n  %s\n\n%s\n", header, body, m.help.View(m.keys))
}
