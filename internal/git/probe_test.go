package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paneline/paneline/internal/models"
)

// fakeRunner serves canned output per git subcommand and records calls.
type fakeRunner struct {
	statusOut string
	statusErr error
	stashOut  string
	stashErr  error
	calls     []string
}

func (f *fakeRunner) run(dir string, name string, args ...string) (string, error) {
	f.calls = append(f.calls, args[0])
	switch args[0] {
	case "status":
		return f.statusOut, f.statusErr
	case "stash":
		return f.stashOut, f.stashErr
	default:
		return "", errors.New("unexpected command")
	}
}

func TestProbeSnapshot(t *testing.T) {
	runner := &fakeRunner{
		statusOut: "# branch.head main\n? newfile.txt\n",
		stashOut:  "stash@{0}: WIP on main\n",
	}

	state, ok := NewProbeWithRunner(runner.run).Snapshot(t.TempDir())
	require.True(t, ok)

	assert.Equal(t, "main", state.Branch.Head)
	assert.Equal(t, []string{"newfile.txt"}, state.Files.Untracked)
	assert.Equal(t, 1, state.StashCount)
	assert.Equal(t, models.StatusClean, state.Status)
	assert.Equal(t, []string{"status", "stash"}, runner.calls)
}

func TestProbeMissingDir(t *testing.T) {
	runner := &fakeRunner{}

	state, ok := NewProbeWithRunner(runner.run).Snapshot("/nonexistent/path")

	assert.False(t, ok)
	assert.Nil(t, state)
	assert.Empty(t, runner.calls, "no commands should run for a missing directory")
}

func TestProbeStatusCommandFails(t *testing.T) {
	runner := &fakeRunner{statusErr: errors.New("not a git repository")}

	state, ok := NewProbeWithRunner(runner.run).Snapshot(t.TempDir())

	assert.False(t, ok)
	assert.Nil(t, state)
	assert.Equal(t, []string{"status"}, runner.calls, "stash must not run after a failed status")
}

func TestProbeStashCommandFails(t *testing.T) {
	runner := &fakeRunner{
		statusOut: "# branch.head main\n",
		stashErr:  errors.New("git died"),
	}

	_, ok := NewProbeWithRunner(runner.run).Snapshot(t.TempDir())
	assert.False(t, ok)
}

func TestProbeUnparseableOutput(t *testing.T) {
	// Output without a branch header: still a silent absence, not an error.
	runner := &fakeRunner{statusOut: "? newfile.txt\n"}

	state, ok := NewProbeWithRunner(runner.run).Snapshot(t.TempDir())

	assert.False(t, ok)
	assert.Nil(t, state)
}
