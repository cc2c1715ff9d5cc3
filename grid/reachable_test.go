package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridviz/grid"
)

// TestConnected_EnclosedTarget walls off the target.
//
//	S . . . .
//	. . # # #
//	. . # T #
//	. . # # #
func TestConnected_EnclosedTarget(t *testing.T) {
	g := parse(t,
		"S....",
		"..###",
		"..#T#",
		"..###",
	)
	ok, err := g.Connected(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 2, Col: 3})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.Connected(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 3, Col: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.Connected(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 4, Col: 0})
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
}

// TestReachable_CountsOpenCells checks the mask size on a split grid.
func TestReachable_CountsOpenCells(t *testing.T) {
	g := parse(t,
		"..#..",
		"..#..",
	)
	mask, err := g.Reachable(grid.Pos{Row: 0, Col: 0})
	require.NoError(t, err)
	n := 0
	for _, ok := range mask {
		if ok {
			n++
		}
	}
	assert.Equal(t, 4, n)
}

// TestComponents groups open cells into regions.
//
//	. # .
//	# # .
//	. # .
func TestComponents(t *testing.T) {
	g := parse(t,
		".#.",
		"##.",
		".#.",
	)
	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 0}}, comps[0])
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, comps[1])
	assert.Equal(t, []grid.Pos{{Row: 2, Col: 0}}, comps[2])
}
