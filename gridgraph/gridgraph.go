package gridgraph

import (
	"fmt"
	"math"
)

// New constructs an all-Free grid with the given dimensions.
// Returns ErrInvalidDimension if rows ≤ 0, cols ≤ 0, or rows×cols does not
// fit in an int.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d cells overflow int", ErrInvalidDimension, rows, cols)
	}

	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// State returns the tag of c; ok is false for out-of-bounds cells.
func (g *Grid) State(c Cell) (s CellState, ok bool) {
	if !g.InBounds(c) {
		return Free, false
	}
	return g.cells[g.index(c)], true
}

// IsPassable reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Obstacle
}

// SetObstacle marks c impassable. Out-of-bounds cells are ignored.
// Marking the current Start or Goal removes that tag.
func (g *Grid) SetObstacle(c Cell) {
	g.set(c, Obstacle)
}

// SetStart tags c as the entrance, freeing the previous entrance if any.
// Out-of-bounds cells are ignored.
func (g *Grid) SetStart(c Cell) {
	g.set(c, Start)
}

// SetGoal tags c as the exit, freeing the previous exit if any.
// Out-of-bounds cells are ignored.
func (g *Grid) SetGoal(c Cell) {
	g.set(c, Goal)
}

// Clear resets c to Free. Out-of-bounds cells are ignored.
func (g *Grid) Clear(c Cell) {
	g.set(c, Free)
}

// Start returns the entrance cell, if one has been set.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Goal returns the exit cell, if one has been set.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// Obstacles lists every obstacle cell in row-major order.
func (g *Grid) Obstacles() []Cell {
	var out []Cell
	for i, s := range g.cells {
		if s == Obstacle {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors returns the in-bounds, passable orthogonal neighbours of c in
// the fixed order up, down, left, right. The result holds 0 to 4 cells.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborOffsets returns a copy of the (row, col) deltas in expansion order.
func (g *Grid) NeighborOffsets() [][2]int {
	out := make([][2]int, len(neighborOffsets))
	copy(out, neighborOffsets[:])
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]CellState, len(g.cells))
	copy(cp.cells, g.cells)

	return &cp
}

// set writes s at c and keeps the single-Start/single-Goal bookkeeping.
func (g *Grid) set(c Cell, s CellState) {
	if !g.InBounds(c) {
		return
	}
	i := g.index(c)
	switch g.cells[i] {
	case Start:
		g.hasStart = false
	case Goal:
		g.hasGoal = false
	}

	switch s {
	case Start:
		if g.hasStart {
			g.cells[g.index(g.start)] = Free
		}
		g.start, g.hasStart = c, true
	case Goal:
		if g.hasGoal {
			g.cells[g.index(g.goal)] = Free
		}
		g.goal, g.hasGoal = c, true
	}
	g.cells[i] = s
}

// index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}
