package gridgraph

// Regions finds all 4-connected regions of passable cells.
// Regions are returned in the row-major order of their first cell; cells
// inside a region appear in breadth-first discovery order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]Cell

	for i0 := range g.cells {
		if seen[i0] || g.cells[i0] == Obstacle {
			continue
		}
		// BFS to collect the region
		queue := []Cell{g.Coordinate(i0)}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a and b are both passable and joined by some
// sequence of orthogonal moves over passable cells.
// Complexity: O(R·C) worst case.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if v == b {
				return true
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
