package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// ParseCell parses "row,col". Spaces around either number are allowed.
func ParseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

// ParseCells parses each element of ss with ParseCell, stopping at the first error.
func ParseCells(ss []string) ([]gridgraph.Cell, error) {
	out := make([]gridgraph.Cell, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCell(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// pair converts a decoded TOML array into a Cell.
func pair(v []int) (gridgraph.Cell, error) {
	if len(v) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: got %v", ErrBadCoordinate, v)
	}
	return gridgraph.Cell{Row: v[0], Col: v[1]}, nil
}
