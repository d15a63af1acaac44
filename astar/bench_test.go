package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/routecalc/astar"
	"github.com/katalvlaran/routecalc/gridgraph"
)

// benchGrid builds an n×n grid with ~20% obstacles, keeping the corners free.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.Intn(5) == 0 {
				g.SetObstacle(cell(row, col))
			}
		}
	}
	g.Clear(cell(0, 0))
	g.Clear(cell(n-1, n-1))
	return g
}

// BenchmarkSearch_Open measures corner-to-corner search on an open 500×500 grid.
func BenchmarkSearch_Open(b *testing.B) {
	g, _ := gridgraph.New(500, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, cell(0, 0), cell(499, 499))
	}
}

// BenchmarkSearch_Random measures search on a 300×300 grid with random obstacles.
func BenchmarkSearch_Random(b *testing.B) {
	g := benchGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, cell(0, 0), cell(299, 299))
	}
}

// BenchmarkSearchAll runs 16 searches over one shared 200×200 grid.
func BenchmarkSearchAll(b *testing.B) {
	g := benchGrid(b, 200)
	queries := make([]astar.Query, 16)
	for i := range queries {
		queries[i] = astar.Query{Grid: g, Start: cell(0, 0), Goal: cell(199, 199)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.SearchAll(context.Background(), queries, 0)
	}
}
