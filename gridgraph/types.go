package gridgraph

import "fmt"

// CellState is the occupancy tag of a single grid cell.
type CellState uint8

const (
	// Free cells can be crossed.
	Free CellState = iota
	// Obstacle cells are impassable.
	Obstacle
	// Start marks the entrance. Passable.
	Start
	// Goal marks the exit. Passable.
	Goal
)

// String returns the one-character glyph used by Render.
func (s CellState) String() string {
	switch s {
	case Obstacle:
		return "O"
	case Start:
		return "E"
	case Goal:
		return "S"
	default:
		return "."
	}
}

// Cell is a (row, column) coordinate. It is a comparable value and is used
// directly as a map key.
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Less orders cells row-major: by Row, then by Col.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-size rectangular occupancy map.
// Rows and Cols are set once by New; cells are stored row-major.
// A Grid is not safe for concurrent mutation, but any number of searches
// may read it concurrently once it is no longer being modified.
type Grid struct {
	Rows, Cols int
	cells      []CellState

	start, goal       Cell
	hasStart, hasGoal bool
}

// neighborOffsets lists the orthogonal moves in expansion order:
// up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
