// Package astar finds shortest routes between two cells of a gridgraph.Grid.
//
// What:
//
//   - Search: run A* to completion and get a Result.
//   - FindPath: the same, returning only the Path.
//   - Stepper: advance the search one expansion at a time for tracing.
//   - SearchAll: run many independent searches in parallel.
//   - Manhattan: the heuristic, |Δrow| + |Δcol|.
//
// Movement is orthogonal with unit cost. Manhattan distance never
// overestimates the remaining moves, so the returned path is always one of
// minimum length.
//
// Expansion order:
//
// The cell with the lowest f = g + h is expanded first. Ties go to the lower
// h (the cell closer to the goal), then to the cell whose key was set
// earliest. Neighbours are generated up, down, left, right. The same grid,
// start and goal therefore always produce the same path.
//
// No path:
//
// An unreachable goal is a normal outcome: Result.Found is false and Path is
// empty. Endpoints that are out of bounds or obstacles are treated the same
// way. Errors are reserved for bad options, cancellation, an exhausted
// expansion budget and ErrReconstruction, which indicates an engine bug.
//
// Example usage:
//
//	g, _ := gridgraph.New(5, 5)
//	g.SetObstacle(gridgraph.Cell{Row: 0, Col: 1})
//	res, err := astar.Search(g, gridgraph.Cell{}, gridgraph.Cell{Row: 4, Col: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Path.Steps())
package astar
