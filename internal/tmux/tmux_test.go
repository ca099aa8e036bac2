package tmux

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaneWorkingDirFromEnv(t *testing.T) {
	t.Setenv("TMUX_PWD_%3", "/home/user/src/project")

	dir, ok := PaneWorkingDir("%3")
	require.True(t, ok)
	assert.Equal(t, "/home/user/src/project", dir)
}

func TestPaneWorkingDirFallsBackToServer(t *testing.T) {
	restore := runTmux
	defer func() { runTmux = restore }()

	var gotArgs []string
	runTmux = func(args ...string) (string, error) {
		gotArgs = args
		return "/home/user/elsewhere", nil
	}

	dir, ok := PaneWorkingDir("%7")
	require.True(t, ok)
	assert.Equal(t, "/home/user/elsewhere", dir)
	assert.Equal(t, []string{"display-message", "-p", "-t", "%7", "#{pane_current_path}"}, gotArgs)
}

func TestPaneWorkingDirUnavailable(t *testing.T) {
	restore := runTmux
	defer func() { runTmux = restore }()
	runTmux = func(args ...string) (string, error) {
		return "", errors.New("no server running")
	}

	_, ok := PaneWorkingDir("%9")
	assert.False(t, ok)
}

func TestPaneWorkingDirEmptyPaneID(t *testing.T) {
	_, ok := PaneWorkingDir("")
	assert.False(t, ok)
}
