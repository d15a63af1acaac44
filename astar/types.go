package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded indicates the search expanded MaxExpansions cells
	// without reaching the goal or exhausting the frontier.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrReconstruction indicates the predecessor links do not lead from the
	// goal back to the start. It signals a defect in the engine, never bad input.
	ErrReconstruction = errors.New("astar: predecessor chain is inconsistent")
)

// Path is an ordered sequence of cells from start to goal inclusive.
// Consecutive cells are orthogonally adjacent. An empty Path means no path.
type Path []gridgraph.Cell

// Steps returns the number of moves along p (0 for empty or single-cell paths).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Result contains the outcome of a search.
//
// Found distinguishes "searched, no route" (Found=false, Path empty) from a
// zero Result that was never produced by a search run.
type Result struct {
	Path     Path
	Cost     int  // number of moves; equals Path.Steps() when Found
	Expanded int  // cells removed from the open set
	Found    bool // true when Path runs from start to goal
	Searched bool // true once the search loop has terminated
}

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of cells taken from the open set.
	// A value of 0 disables the limit.
	MaxExpansions int

	// OnExpand is called for each cell taken from the open set, with its cost
	// from the start.
	OnExpand func(c gridgraph.Cell, g int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(gridgraph.Cell, int) {},
	}
}

// WithContext sets the context checked between expansions. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the work of one search. n == 0 means no limit;
// negative values are rejected with ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand installs a hook observing expansion order. A nil fn is ignored.
func WithOnExpand(fn func(c gridgraph.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Query is one independent search request for SearchAll.
type Query struct {
	Grid        *gridgraph.Grid
	Start, Goal gridgraph.Cell
	Options     []Option
}
