package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a grid was requested with rows ≤ 0 or cols ≤ 0.
	ErrInvalidDimension = errors.New("gridgraph: grid must have at least one row and one column")
)
