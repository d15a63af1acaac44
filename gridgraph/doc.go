// Package gridgraph models a rectangular occupancy grid as a graph whose
// vertices are cells and whose edges join orthogonally adjacent passable
// cells.
//
// What:
//
//   - Grid stores one CellState per cell: Free, Obstacle, Start or Goal.
//   - Neighbors yields the in-bounds passable cells up, down, left and right
//     of a cell, always in that order.
//   - Regions groups passable cells into 4-connected components.
//   - Render draws the grid (and optionally a path) as text.
//
// Why:
//
//   - Route planning: feed a Grid to the astar package for shortest paths.
//   - Sanity checks: Connected answers "is there any route at all" without
//     running a search.
//
// Complexity:
//
//   - New:       O(R×C) time and memory.
//   - Neighbors: O(1).
//   - Regions:   O(R×C), Memory: O(R×C).
//   - Render:    O(R×C + P) where P is the path length.
//
// Mutation rules:
//
//   - SetObstacle, SetStart and SetGoal silently ignore out-of-bounds cells.
//   - A grid holds at most one Start and one Goal; setting either again moves
//     the tag and frees the previous cell.
//   - Start and Goal overwrite whatever was there, obstacles included.
//
// Errors:
//
//   - ErrInvalidDimension: rows or columns are not positive.
package gridgraph
