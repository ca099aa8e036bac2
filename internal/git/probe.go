package git

import (
	"os"
	"os/exec"

	"github.com/paneline/paneline/internal/logger"
	"github.com/paneline/paneline/internal/models"
)

// Runner executes a command in a working directory and returns its stdout.
// It exists so tests can stand in for the real git binary.
type Runner func(dir string, name string, args ...string) (string, error)

var (
	statusArgs = []string{"status", "--porcelain=v2", "--branch", "--ignored"}
	stashArgs  = []string{"stash", "list"}
)

// execRunner runs the command with the directory as its execution context.
func execRunner(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}

// Probe runs the two status queries against a working directory and parses
// the result into a snapshot. Every failure mode is silent: the caller's
// render loop degrades to showing no segment, never an error.
type Probe struct {
	run Runner
}

// NewProbe returns a Probe backed by the real git binary.
func NewProbe() *Probe {
	return &Probe{run: execRunner}
}

// NewProbeWithRunner returns a Probe backed by the given runner.
func NewProbeWithRunner(run Runner) *Probe {
	return &Probe{run: run}
}

// Snapshot probes dir and reports ok=false when the directory does not
// exist, either git command fails (not a repository, git unavailable), or
// the output does not parse.
func (p *Probe) Snapshot(dir string) (*models.RepositoryState, bool) {
	if _, err := os.Stat(dir); err != nil {
		logger.Debug().Str("dir", dir).Msg("probe: directory not found")
		return nil, false
	}

	statusOut, err := p.run(dir, "git", statusArgs...)
	if err != nil {
		logger.Debug().Str("dir", dir).Err(err).Msg("probe: status query failed")
		return nil, false
	}

	stashOut, err := p.run(dir, "git", stashArgs...)
	if err != nil {
		logger.Debug().Str("dir", dir).Err(err).Msg("probe: stash query failed")
		return nil, false
	}

	state, err := Parse(statusOut, stashOut)
	if err != nil {
		logger.Debug().Str("dir", dir).Err(err).Msg("probe: parse failed")
		return nil, false
	}

	logger.Debug().
		Str("dir", dir).
		Str("head", state.Branch.Head).
		Stringer("status", state.Status).
		Int("stashes", state.StashCount).
		Msg("probe: snapshot built")
	return state, true
}
