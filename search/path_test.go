package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/search"
)

// TestPath_OpenGrid follows the origin bits written during the search.
func TestPath_OpenGrid(t *testing.T) {
	g, src, dst := layout(t,
		"S..",
		"...",
		"..T",
	)
	b := search.NewBFS()
	require.NoError(t, b.Reset(src, dst))
	runToEnd(t, b, g, g.Len()+1)

	path, err := search.Path(g, src, dst)
	require.NoError(t, err)
	assert.Equal(t, []grid.Pos{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}, path)
}

// TestPath_ShortestAroundWall checks hop count equals the BFS distance.
//
//	S . # . .
//	. . # . .
//	. . . . T
func TestPath_ShortestAroundWall(t *testing.T) {
	g, src, dst := layout(t,
		"S.#..",
		"..#..",
		"....T",
	)
	b := search.NewBFS()
	require.NoError(t, b.Reset(src, dst))
	runToEnd(t, b, g, g.Len()+1)
	require.Equal(t, search.Found, b.Status())

	path, err := search.Path(g, src, dst)
	require.NoError(t, err)
	require.Len(t, path, 7, "6 hops")
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		assert.Equal(t, 1, dr*dr+dc*dc, "step %d is not orthogonal", i)
		assert.False(t, g.IsWall(path[i].Row, path[i].Col))
	}
}

// TestPath_Errors covers missing origins and bad coordinates.
func TestPath_Errors(t *testing.T) {
	g, src, dst := layout(t, "S.T")
	b := search.NewBFS(search.WithoutOrigins())
	require.NoError(t, b.Reset(src, dst))
	runToEnd(t, b, g, g.Len()+1)
	require.Equal(t, search.Found, b.Status())

	_, err := search.Path(g, src, dst)
	assert.ErrorIs(t, err, search.ErrNoPath)

	_, err = search.Path(g, src, grid.Pos{Row: 1, Col: 0})
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)

	p, err := search.Path(g, src, src)
	require.NoError(t, err)
	assert.Equal(t, []grid.Pos{src}, p)
}
