// A* over a gridgraph.Grid: unit move costs, 4-directional movement,
// Manhattan heuristic.
//
// The open set is a binary heap keyed by f = g + h with an index from cell to
// heap slot, so membership tests are O(1) and improved keys are fixed in
// place with heap.Fix rather than by pushing duplicates.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of passable cells.
//   - Space: O(N) for the score maps, predecessor map and heap.

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// Search runs A* on g from start to goal.
//
// Returns:
//
//   - Result.Found with the shortest Path when goal is reachable.
//   - Result.Found == false and an empty Path when it is not. This includes
//     start or goal being out of bounds or an obstacle. It is not an error.
//   - err for a nil grid, a bad Option, a cancelled context, an exceeded
//     expansion budget, or ErrReconstruction if the predecessor links are
//     broken (an engine defect).
//
// The grid is only read. Searches over the same grid may run concurrently
// provided nobody mutates it meanwhile.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Run the loop until the frontier is exhausted or the goal is popped.
	r := newRunner(g, start, goal, cfg)
	for {
		select {
		case <-cfg.Ctx.Done():
			return Result{Expanded: r.expanded}, cfg.Ctx.Err()
		default:
		}

		st, err := r.step()
		if err != nil {
			return Result{Expanded: r.expanded}, err
		}
		if st.done {
			return r.result(st.found)
		}
	}
}

// FindPath returns the shortest path from start to goal, or an empty Path
// if none exists.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell) (Path, error) {
	res, err := Search(g, start, goal)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	grid        *gridgraph.Grid
	start, goal gridgraph.Cell
	options     Options

	open     openQueue
	inOpen   map[gridgraph.Cell]*openItem
	gScore   map[gridgraph.Cell]int
	fScore   map[gridgraph.Cell]int
	cameFrom map[gridgraph.Cell]gridgraph.Cell

	seq      uint64
	expanded int
}

// stepOutcome reports what one call to runner.step did.
type stepOutcome struct {
	current gridgraph.Cell
	done    bool
	found   bool
}

// initialOpenCap is the starting capacity of the open set; the heap grows
// with the frontier, not with the grid.
const initialOpenCap = 64

// newRunner seeds the open set with start. When either endpoint is not
// passable the open set stays empty and the first step reports no path.
func newRunner(g *gridgraph.Grid, start, goal gridgraph.Cell, cfg Options) *runner {
	r := &runner{
		grid:     g,
		start:    start,
		goal:     goal,
		options:  cfg,
		open:     make(openQueue, 0, initialOpenCap),
		inOpen:   make(map[gridgraph.Cell]*openItem),
		gScore:   make(map[gridgraph.Cell]int),
		fScore:   make(map[gridgraph.Cell]int),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell),
	}
	heap.Init(&r.open)

	if !g.IsPassable(start) || !g.IsPassable(goal) {
		return r
	}
	h := Manhattan(start, goal)
	r.gScore[start] = 0
	r.fScore[start] = h
	r.push(start, h, h)

	return r
}

// cost returns the best known cost to c; ok is false if c was never reached.
func (r *runner) cost(c gridgraph.Cell) (g int, ok bool) {
	g, ok = r.gScore[c]
	return g, ok
}

// step pops the lowest-f cell and relaxes its neighbours.
func (r *runner) step() (stepOutcome, error) {
	if r.open.Len() == 0 {
		return stepOutcome{done: true}, nil
	}

	item := heap.Pop(&r.open).(*openItem)
	current := item.cell
	delete(r.inOpen, current)
	r.expanded++

	gCur, _ := r.cost(current)
	r.options.OnExpand(current, gCur)

	if current == r.goal {
		return stepOutcome{current: current, done: true, found: true}, nil
	}
	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		return stepOutcome{current: current}, fmt.Errorf("%w: %d cells expanded", ErrBudgetExceeded, r.expanded)
	}

	tentative := gCur + 1
	for _, n := range r.grid.Neighbors(current) {
		if old, ok := r.cost(n); ok && tentative >= old {
			continue
		}
		h := Manhattan(n, r.goal)
		r.cameFrom[n] = current
		r.gScore[n] = tentative
		r.fScore[n] = tentative + h

		if it, ok := r.inOpen[n]; ok {
			r.seq++
			it.f, it.h, it.seq = tentative+h, h, r.seq
			heap.Fix(&r.open, it.index)
			continue
		}
		r.push(n, tentative+h, h)
	}

	return stepOutcome{current: current}, nil
}

// push adds c to the open set with a fresh insertion stamp.
func (r *runner) push(c gridgraph.Cell, f, h int) {
	r.seq++
	it := &openItem{cell: c, f: f, h: h, seq: r.seq}
	heap.Push(&r.open, it)
	r.inOpen[c] = it
}

// result packages the terminal state of the search.
func (r *runner) result(found bool) (Result, error) {
	res := Result{Expanded: r.expanded, Searched: true}
	if !found {
		return res, nil
	}
	path, err := reconstruct(r.cameFrom, r.start, r.goal)
	if err != nil {
		return Result{Expanded: r.expanded}, err
	}
	res.Path = path
	res.Cost = r.gScore[r.goal]
	res.Found = true

	return res, nil
}
