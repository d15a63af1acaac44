package astar

import (
	"fmt"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// reconstruct walks cameFrom from goal back to start and returns the cells
// in start→goal order.
//
// A missing predecessor, or a walk longer than cameFrom itself (a cycle),
// yields ErrReconstruction.
func reconstruct(
	cameFrom map[gridgraph.Cell]gridgraph.Cell,
	start gridgraph.Cell,
	goal gridgraph.Cell,
) (Path, error) {
	path := Path{goal}
	for current := goal; current != start; {
		prev, ok := cameFrom[current]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v on the way to %v", ErrReconstruction, current, start)
		}
		path = append(path, prev)
		if len(path) > len(cameFrom)+1 {
			return nil, fmt.Errorf("%w: cycle through %v", ErrReconstruction, prev)
		}
		current = prev
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
