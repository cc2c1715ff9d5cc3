package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/search"
)

// BenchmarkBFS_FullSearch steps a BFS to completion on a 200×200 grid with
// 25% walls, rebuilding the visit flags each iteration.
// Complexity: O(W×H)
func BenchmarkBFS_FullSearch(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.Regenerate(func(_, _ int) bool { return rng.Float64() < 0.25 })
	src, dst := grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: n - 1, Col: n - 1}
	_ = g.SetWall(src.Row, src.Col, false)
	_ = g.SetWall(dst.Row, dst.Col, false)
	_ = g.SetTarget(dst.Row, dst.Col)

	s := search.NewBFS()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearVisits()
		_ = s.Reset(src, dst)
		for !s.Step(g) {
		}
	}
}
