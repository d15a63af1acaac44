package astar

import "github.com/katalvlaran/routecalc/gridgraph"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// It never overestimates the number of orthogonal unit moves between a and b,
// so A* driven by it returns shortest paths.
func Manhattan(a, b gridgraph.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
