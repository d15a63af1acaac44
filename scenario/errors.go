package scenario

import "errors"

var (
	// ErrBadCoordinate indicates input that is not a "row,col" pair of integers.
	ErrBadCoordinate = errors.New("scenario: coordinate must be two integers 'row,col'")
	// ErrMissingEndpoint indicates the start or goal was not provided.
	ErrMissingEndpoint = errors.New("scenario: start and goal are required")
	// ErrOutOfBounds indicates an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("scenario: coordinate outside the grid")
)
