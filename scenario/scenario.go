package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// DefaultSize is the side of the square grid used when rows or cols are omitted.
const DefaultSize = 5

// Scenario describes one grid and the route requested across it.
// Coordinates are [row, col] pairs.
type Scenario struct {
	Name      string  `toml:"name,omitempty"`
	Rows      int     `toml:"rows"`
	Cols      int     `toml:"cols"`
	Start     []int   `toml:"start"`
	Goal      []int   `toml:"goal"`
	Obstacles [][]int `toml:"obstacles"`
}

// Default returns an empty DefaultSize×DefaultSize scenario with no endpoints.
func Default() Scenario {
	return Scenario{Rows: DefaultSize, Cols: DefaultSize}
}

// Decode reads a TOML scenario from r on top of Default.
// Unknown keys are rejected so that typos do not silently drop obstacles.
func Decode(r io.Reader) (Scenario, error) {
	s := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	return s, nil
}

// Load reads and validates the scenario file at path.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SetStart records c as the start.
func (s *Scenario) SetStart(c gridgraph.Cell) { s.Start = []int{c.Row, c.Col} }

// SetGoal records c as the goal.
func (s *Scenario) SetGoal(c gridgraph.Cell) { s.Goal = []int{c.Row, c.Col} }

// AddObstacles appends cs to the obstacle list.
func (s *Scenario) AddObstacles(cs ...gridgraph.Cell) {
	for _, c := range cs {
		s.Obstacles = append(s.Obstacles, []int{c.Row, c.Col})
	}
}

// Endpoints returns the start and goal cells.
func (s Scenario) Endpoints() (start, goal gridgraph.Cell, err error) {
	if s.Start == nil || s.Goal == nil {
		return start, goal, ErrMissingEndpoint
	}
	if start, err = pair(s.Start); err != nil {
		return start, goal, fmt.Errorf("start: %w", err)
	}
	if goal, err = pair(s.Goal); err != nil {
		return start, goal, fmt.Errorf("goal: %w", err)
	}
	return start, goal, nil
}

// Validate checks dimensions, endpoint presence and bounds, and the shape of
// every obstacle entry. Obstacles outside the grid are allowed.
func (s Scenario) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: got %d×%d", gridgraph.ErrInvalidDimension, s.Rows, s.Cols)
	}
	start, goal, err := s.Endpoints()
	if err != nil {
		return err
	}
	endpoints := []struct {
		name string
		c    gridgraph.Cell
	}{{"start", start}, {"goal", goal}}
	for _, e := range endpoints {
		if e.c.Row < 0 || e.c.Row >= s.Rows || e.c.Col < 0 || e.c.Col >= s.Cols {
			return fmt.Errorf("%w: %s %v in %d×%d grid", ErrOutOfBounds, e.name, e.c, s.Rows, s.Cols)
		}
	}
	for i, o := range s.Obstacles {
		if _, err := pair(o); err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
	}
	return nil
}

// Build validates s and returns the grid with obstacles, then start, then
// goal applied, in that order, plus the two endpoints.
func (s Scenario) Build() (*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell, error) {
	var start, goal gridgraph.Cell
	if err := s.Validate(); err != nil {
		return nil, start, goal, err
	}
	g, err := gridgraph.New(s.Rows, s.Cols)
	if err != nil {
		return nil, start, goal, err
	}
	for _, o := range s.Obstacles {
		c, _ := pair(o)
		g.SetObstacle(c)
	}
	start, goal, _ = s.Endpoints()
	g.SetStart(start)
	g.SetGoal(goal)

	return g, start, goal, nil
}
