// Package tmux resolves tmux pane identifiers to working directories.
package tmux

import (
	"os"
	"os/exec"
	"strings"

	"github.com/paneline/paneline/internal/logger"
)

// envPrefix matches the variables a pane hook exports into the status bar
// environment, e.g. TMUX_PWD_%3=/home/user/src.
const envPrefix = "TMUX_PWD_"

// runTmux asks the tmux server directly; swapped out in tests.
var runTmux = func(args ...string) (string, error) {
	out, err := exec.Command("tmux", args...).Output()
	return strings.TrimSpace(string(out)), err
}

// PaneWorkingDir resolves the working directory of a pane. The environment
// variable set by the pane hook wins; when it is absent the tmux server is
// asked for #{pane_current_path}. ok is false when neither source knows the
// pane, in which case no segment is shown.
func PaneWorkingDir(paneID string) (string, bool) {
	if paneID == "" {
		return "", false
	}

	if dir := os.Getenv(envPrefix + paneID); dir != "" {
		logger.Debug().Str("pane", paneID).Str("dir", dir).Msg("tmux: pane dir from environment")
		return dir, true
	}

	dir, err := runTmux("display-message", "-p", "-t", paneID, "#{pane_current_path}")
	if err != nil || dir == "" {
		logger.Debug().Str("pane", paneID).Err(err).Msg("tmux: pane dir unavailable")
		return "", false
	}

	logger.Debug().Str("pane", paneID).Str("dir", dir).Msg("tmux: pane dir from server")
	return dir, true
}
