// Package routecalc computes shortest routes between two cells of a grid
// with impassable obstacles.
//
// What is routecalc?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: free/obstacle/start/goal cells, bounds checks, neighbours
//		• A* search: Manhattan heuristic, unit costs, 4-directional moves
//		• Step-wise tracing of the search for debugging and visualisation
//		• Parallel batch search over shared read-only grids
//		• Scenario input: "row,col" parsing, TOML files, console dialogue
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/      Grid, Cell, CellState, Neighbors, Regions, Render
//	astar/          Search, FindPath, Stepper, SearchAll, Manhattan
//	scenario/       ParseCell, TOML scenarios, interactive Session
//	cmd/routecalc/  command-line front end (solve, interactive)
//	examples/       runnable walkthroughs
//
// Quick ASCII example (E entrance, S exit, O obstacle, * route):
//
//	E O . . .
//	* O . . .
//	* . . . .
//	* . . . .
//	* * * * S
//
//	go get github.com/katalvlaran/routecalc
package routecalc
