// Package scenario turns user input into a gridgraph.Grid plus the two
// endpoints a search needs.
//
// Inputs come from three places:
//
//   - ParseCell: a "row,col" string, as typed on a console or passed as a flag.
//   - Decode / Load: a TOML scenario file.
//   - Session: the prompt-and-retry console dialogue for obstacles, entrance
//     and exit.
//
// A scenario file looks like:
//
//	name = "two pillars"
//	rows = 5
//	cols = 5
//	start = [0, 0]
//	goal = [4, 4]
//	obstacles = [[0, 1], [1, 1]]
//
// rows and cols default to 5. Obstacles outside the grid are dropped when
// the grid is built; endpoints outside it are rejected by Validate.
//
// Errors:
//
//   - ErrBadCoordinate:   text or array that is not a (row, col) pair.
//   - ErrMissingEndpoint: start or goal not given.
//   - ErrOutOfBounds:     start or goal outside the grid.
//   - gridgraph.ErrInvalidDimension: rows or cols not positive.
package scenario
