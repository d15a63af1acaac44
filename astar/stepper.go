package astar

import (
	"fmt"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// Snapshot exposes the state of a search after one expansion.
// Maps are copies and may be kept or modified by the caller.
type Snapshot struct {
	Current   gridgraph.Cell
	Open      map[gridgraph.Cell]bool
	CameFrom  map[gridgraph.Cell]gridgraph.Cell
	Done      bool
	Found     bool
	Path      Path
	StepIndex int
}

// Stepper drives a search one expansion at a time, for tracing and
// visualisation. It expands cells in exactly the order Search does.
type Stepper struct {
	r    *runner
	done bool
	last Snapshot
}

// NewStepper prepares a step-wise search. Options are validated as in Search;
// WithContext is honoured on each Step.
func NewStepper(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Stepper{r: newRunner(g, start, goal, cfg)}, nil
}

// Step advances the search by one expansion and returns a snapshot.
// Once Done is reported, further calls return the final snapshot again.
func (s *Stepper) Step() (Snapshot, error) {
	if s.done {
		return s.last, nil
	}
	if err := s.r.options.Ctx.Err(); err != nil {
		s.finish(Snapshot{Done: true, StepIndex: s.r.expanded})
		return s.last, err
	}

	st, err := s.r.step()
	if err != nil {
		s.finish(Snapshot{Current: st.current, Done: true, StepIndex: s.r.expanded})
		return s.last, err
	}

	snap := Snapshot{
		Current:   st.current,
		Open:      s.openCells(),
		CameFrom:  copyCameFrom(s.r.cameFrom),
		Done:      st.done,
		Found:     st.found,
		StepIndex: s.r.expanded,
	}
	if st.found {
		path, err := reconstruct(s.r.cameFrom, s.r.start, s.r.goal)
		if err != nil {
			snap.Found = false
			s.finish(snap)
			return snap, err
		}
		snap.Path = path
	}
	if st.done {
		s.finish(snap)
	}

	return snap, nil
}

// Run steps until the search is done and returns the final snapshot.
func (s *Stepper) Run() (Snapshot, error) {
	for {
		snap, err := s.Step()
		if err != nil || snap.Done {
			return snap, err
		}
	}
}

// Peek returns the cell Step would expand next, if any.
func (s *Stepper) Peek() (gridgraph.Cell, bool) {
	if s.done || s.r.open.Len() == 0 {
		return gridgraph.Cell{}, false
	}
	return s.r.open[0].cell, true
}

func (s *Stepper) finish(snap Snapshot) {
	s.done = true
	s.last = snap
}

func (s *Stepper) openCells() map[gridgraph.Cell]bool {
	m := make(map[gridgraph.Cell]bool, len(s.r.inOpen))
	for c := range s.r.inOpen {
		m[c] = true
	}
	return m
}

func copyCameFrom(m map[gridgraph.Cell]gridgraph.Cell) map[gridgraph.Cell]gridgraph.Cell {
	c := make(map[gridgraph.Cell]gridgraph.Cell, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// String summarises the snapshot on one line.
func (s Snapshot) String() string {
	switch {
	case s.Done && s.Found:
		return fmt.Sprintf("step %d: reached %v in %d moves", s.StepIndex, s.Current, s.Path.Steps())
	case s.Done:
		return fmt.Sprintf("step %d: frontier exhausted", s.StepIndex)
	default:
		return fmt.Sprintf("step %d: expanded %v, %d open", s.StepIndex, s.Current, len(s.Open))
	}
}
