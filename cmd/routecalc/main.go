// Command routecalc computes the shortest route between an entrance and an
// exit on a grid with obstacles.
//
//	routecalc solve --scenario grid.toml
//	routecalc solve --rows 5 --cols 5 --obstacle 0,1 --obstacle 1,1 --start 0,0 --goal 2,2
//	routecalc interactive
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/routecalc/astar"
	"github.com/katalvlaran/routecalc/gridgraph"
	"github.com/katalvlaran/routecalc/scenario"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("routecalc: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "routecalc",
		Usage:                  "Shortest route across a grid with obstacles (A*, Manhattan heuristic)",
		Version:                Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:    "solve",
				Aliases: []string{"s"},
				Usage:   "Solve a scenario given as a TOML file and/or flags",
				Flags: append(gridFlags(),
					&cli.StringFlag{
						Name:    "scenario",
						Aliases: []string{"f"},
						Usage:   "TOML scenario file (flags override its values)",
					},
					&cli.StringSliceFlag{
						Name:    "obstacle",
						Aliases: []string{"o"},
						Usage:   "Obstacle position 'row,col' (repeatable)",
					},
					&cli.StringFlag{
						Name:  "start",
						Usage: "Entrance position 'row,col'",
					},
					&cli.StringFlag{
						Name:  "goal",
						Usage: "Exit position 'row,col'",
					},
				),
				Action: solveAction,
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Enter obstacles, entrance and exit at the console",
				Flags:   gridFlags(),
				Action:  interactiveAction,
			},
		},
	}
}

// gridFlags are shared by every command.
func gridFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "rows",
			Aliases: []string{"r"},
			Usage:   "Number of grid rows",
			Value:   scenario.DefaultSize,
		},
		&cli.IntFlag{
			Name:    "cols",
			Aliases: []string{"c"},
			Usage:   "Number of grid columns",
			Value:   scenario.DefaultSize,
		},
		&cli.IntFlag{
			Name:  "max-expansions",
			Usage: "Abort after expanding this many cells (0 = no limit)",
		},
		&cli.BoolFlag{
			Name:    "trace",
			Aliases: []string{"t"},
			Usage:   "Print every expansion of the search",
		},
	}
}

// loadScenario reads --scenario when given and applies flag overrides.
func loadScenario(c *cli.Context) (scenario.Scenario, error) {
	s := scenario.Default()
	if path := c.String("scenario"); path != "" {
		loaded, err := scenario.Load(path)
		if err != nil {
			return s, fmt.Errorf("failed to load scenario: %w", err)
		}
		s = loaded
	}

	if c.IsSet("rows") || c.String("scenario") == "" {
		s.Rows = c.Int("rows")
	}
	if c.IsSet("cols") || c.String("scenario") == "" {
		s.Cols = c.Int("cols")
	}
	if obstacles := c.StringSlice("obstacle"); len(obstacles) > 0 {
		cells, err := scenario.ParseCells(obstacles)
		if err != nil {
			return s, fmt.Errorf("--obstacle: %w", err)
		}
		s.AddObstacles(cells...)
	}
	for _, f := range []struct {
		name string
		set  func(gridgraph.Cell)
	}{{"start", s.SetStart}, {"goal", s.SetGoal}} {
		if v := c.String(f.name); v != "" {
			cell, err := scenario.ParseCell(v)
			if err != nil {
				return s, fmt.Errorf("--%s: %w", f.name, err)
			}
			f.set(cell)
		}
	}

	return s, nil
}

func solveAction(c *cli.Context) error {
	s, err := loadScenario(c)
	if err != nil {
		return err
	}
	g, start, goal, err := s.Build()
	if err != nil {
		return err
	}

	out := c.App.Writer
	if s.Name != "" {
		fmt.Fprintf(out, "Scenario: %s\n", s.Name)
	}
	fmt.Fprint(out, g.Render(nil))
	fmt.Fprintln(out)

	return report(c, g, start, goal)
}

func interactiveAction(c *cli.Context) error {
	g, err := gridgraph.New(c.Int("rows"), c.Int("cols"))
	if err != nil {
		return err
	}
	out := c.App.Writer
	fmt.Fprint(out, g.Render(nil))

	sess := scenario.NewSession(c.App.Reader, out)
	fmt.Fprintln(out, "Enter the obstacle positions.")
	obstacles, err := sess.ReadObstacles()
	if err != nil {
		return err
	}
	for _, o := range obstacles {
		g.SetObstacle(o)
	}
	start, err := sess.ReadCell("entrance", g)
	if err != nil {
		return err
	}
	goal, err := sess.ReadCell("exit", g)
	if err != nil {
		return err
	}
	g.SetStart(start)
	g.SetGoal(goal)

	fmt.Fprint(out, g.Render(nil))
	fmt.Fprintln(out)

	return report(c, g, start, goal)
}

// report runs the search and prints the heuristic, the route and the final grid.
func report(c *cli.Context, g *gridgraph.Grid, start, goal gridgraph.Cell) error {
	out := c.App.Writer
	fmt.Fprintf(out, "Heuristic distance from entrance to exit: %d\n", astar.Manhattan(start, goal))

	opts := []astar.Option{
		astar.WithContext(c.Context),
		astar.WithMaxExpansions(c.Int("max-expansions")),
	}
	path, err := search(out, g, start, goal, c.Bool("trace"), opts)
	if errors.Is(err, astar.ErrBudgetExceeded) {
		return cli.Exit(err.Error(), 2)
	}
	if err != nil {
		return err
	}

	if len(path) == 0 {
		fmt.Fprintln(out, "No path found.")
	} else {
		fmt.Fprintf(out, "Route (%d steps):\n", path.Steps())
		for _, cell := range path {
			fmt.Fprintln(out, cell)
		}
	}
	fmt.Fprint(out, g.Render(path))

	return nil
}

// search runs a plain Search, or a Stepper printing each snapshot when trace is set.
func search(out io.Writer, g *gridgraph.Grid, start, goal gridgraph.Cell, trace bool, opts []astar.Option) (astar.Path, error) {
	if !trace {
		res, err := astar.Search(g, start, goal, opts...)
		return res.Path, err
	}

	s, err := astar.NewStepper(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	for {
		snap, err := s.Step()
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(out, snap)
		if snap.Done {
			return snap.Path, nil
		}
	}
}
