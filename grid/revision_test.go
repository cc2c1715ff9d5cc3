package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridviz/grid"
)

// TestRevision_BumpsOnMutation checks every mutator advances the counter.
func TestRevision_BumpsOnMutation(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	last := g.Revision()

	mutators := map[string]func() error{
		"SetWall":     func() error { return g.SetWall(0, 0, true) },
		"MarkVisited": func() error { return g.MarkVisited(0, 1) },
		"SetSource":   func() error { return g.SetSource(1, 0) },
		"SetTarget":   func() error { return g.SetTarget(1, 1) },
		"SetOrigin":   func() error { return g.SetOrigin(grid.Pos{}, grid.Pos{Row: 0, Col: 1}) },
		"Clear":       func() error { g.Clear(); return nil },
	}
	for name, fn := range mutators {
		require.NoError(t, fn(), name)
		assert.Greater(t, g.Revision(), last, name)
		last = g.Revision()
	}

	// failed mutations leave the revision alone
	_ = g.SetWall(9, 9, true)
	assert.Equal(t, last, g.Revision())
}

// TestSnapshot_IsIndependent mutates the original after a snapshot.
func TestSnapshot_IsIndependent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	snap := g.Snapshot()
	require.NoError(t, g.SetWall(0, 0, true))
	assert.False(t, snap.IsWall(0, 0))
	assert.Equal(t, snap.Revision()+1, g.Revision())
}

// TestChanged lists dirty cells between two revisions.
func TestChanged(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	prev := g.Snapshot()

	require.NoError(t, g.MarkFrontier(0, 2))
	require.NoError(t, g.SetTarget(2, 1))
	require.NoError(t, g.SetOrigin(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 1, Col: 0}))

	got, err := g.Changed(prev)
	require.NoError(t, err)
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 1}}, got)

	none, err := g.Changed(g.Snapshot())
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := g.Changed(nil)
	require.NoError(t, err)
	assert.Len(t, all, 9)

	other, err := grid.New(2, 3)
	require.NoError(t, err)
	_, err = g.Changed(other)
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
}
