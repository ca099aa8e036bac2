package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paneline/paneline/internal/models"
)

func cleanUntrackedState() *models.RepositoryState {
	return models.NewRepositoryState(
		models.BranchInfo{Head: "master"},
		models.FileSet{Untracked: []string{"newfile.txt"}, Ignored: []string{"build/"}},
		0,
	)
}

func TestRenderCleanWithUntracked(t *testing.T) {
	frags := Render(cleanUntrackedState(), DefaultOptions())

	require.Len(t, frags, 3)
	assert.Equal(t, models.Fragment{Text: "✔", Style: models.StyleStatusClean, DrawSeparator: true}, frags[0])
	assert.Equal(t, models.Fragment{Text: "master", Style: models.StyleBranchName, DrawSeparator: true}, frags[1])
	assert.Equal(t, models.Fragment{Text: "…1", Style: models.StyleFileCounts, DrawSeparator: false}, frags[2])
}

func TestRenderDirtyWithStash(t *testing.T) {
	state := models.NewRepositoryState(
		models.BranchInfo{Head: "main", Upstream: "origin/main"},
		models.FileSet{
			Staged:   []string{"a.go", "b.go"},
			Unstaged: []string{"b.go"},
		},
		2,
	)

	frags := Render(state, DefaultOptions())

	require.Len(t, frags, 4)
	assert.Equal(t, "⨀", frags[0].Text)
	assert.Equal(t, models.StyleStatusDirty, frags[0].Style)
	assert.Equal(t, "main", frags[1].Text)
	assert.Equal(t, "⚑2", frags[2].Text)
	assert.Equal(t, models.StyleStashCount, frags[2].Style)
	assert.Equal(t, "⚫2╱±1", frags[3].Text)
	assert.Equal(t, models.StyleFileCounts, frags[3].Style)
}

func TestRenderSeparatorFlags(t *testing.T) {
	frags := Render(cleanUntrackedState(), DefaultOptions())

	require.NotEmpty(t, frags)
	for i, frag := range frags[:len(frags)-1] {
		assert.True(t, frag.DrawSeparator, "fragment %d should request a separator", i)
	}
	assert.False(t, frags[len(frags)-1].DrawSeparator, "last fragment must not request a separator")
}

func TestRenderSeparateFileCounts(t *testing.T) {
	state := models.NewRepositoryState(
		models.BranchInfo{Head: "main"},
		models.FileSet{
			Staged:    []string{"a.go"},
			Unstaged:  []string{"b.go"},
			Untracked: []string{"c.go"},
		},
		0,
	)

	opts := DefaultOptions()
	opts.CombineFileCounts = false
	frags := Render(state, opts)

	require.Len(t, frags, 5)
	assert.Equal(t, "⚫1", frags[2].Text)
	assert.Equal(t, "±1", frags[3].Text)
	assert.Equal(t, "…1", frags[4].Text)
}

func TestRenderWithoutStatusGlyph(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeStatusGlyph = false

	frags := Render(cleanUntrackedState(), opts)

	require.Len(t, frags, 2)
	assert.Equal(t, "master", frags[0].Text)
	assert.Equal(t, "…1", frags[1].Text)
}

func TestRenderBroken(t *testing.T) {
	frags := Render(models.BrokenState(), DefaultOptions())

	require.Len(t, frags, 1)
	assert.Equal(t, models.Fragment{Text: "✘", Style: models.StyleStatusBroken}, frags[0])
}

func TestRenderIgnoredNeverShown(t *testing.T) {
	state := models.NewRepositoryState(
		models.BranchInfo{Head: "main"},
		models.FileSet{Ignored: []string{"build/", "dist/"}},
		0,
	)

	frags := Render(state, DefaultOptions())

	require.Len(t, frags, 2, "only status glyph and branch")
	for _, frag := range frags {
		assert.NotEqual(t, models.StyleFileCounts, frag.Style)
	}
}

func TestRenderUnknownStatusFallsBack(t *testing.T) {
	state := &models.RepositoryState{
		Branch: models.BranchInfo{Head: "main"},
		Status: models.Status(42),
	}

	frags := Render(state, DefaultOptions())

	require.Len(t, frags, 2)
	assert.Equal(t, models.Fragment{Text: "⁉", Style: models.StyleStatusDefault, DrawSeparator: true}, frags[0])
	assert.Equal(t, "main", frags[1].Text)
}

func TestRenderNilState(t *testing.T) {
	assert.Nil(t, Render(nil, DefaultOptions()))
}

func TestRenderZeroGlyphsFallBack(t *testing.T) {
	frags := Render(cleanUntrackedState(), Options{IncludeStatusGlyph: true})

	require.NotEmpty(t, frags)
	assert.Equal(t, "✔", frags[0].Text)
}
