package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/routecalc/astar"
	"github.com/katalvlaran/routecalc/gridgraph"
	"github.com/katalvlaran/routecalc/scenario"
)

// run executes the app with args and stdin, returning stdout and the error.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"routecalc"}, args...))
	return out.String(), err
}

func TestSolve_Flags(t *testing.T) {
	out, err := run(t, "", "solve", "--start", "0,0", "--goal", "4,4")
	require.NoError(t, err)

	want := strings.Join([]string{
		"E . . . .",
		". . . . .",
		". . . . .",
		". . . . .",
		". . . . S",
		"",
		"Heuristic distance from entrance to exit: 8",
		"Route (8 steps):",
		"(0,0)", "(1,0)", "(2,0)", "(3,0)", "(4,0)", "(4,1)", "(4,2)", "(4,3)", "(4,4)",
		"E . . . .",
		"* . . . .",
		"* . . . .",
		"* . . . .",
		"* * * * S",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

// TestSolve_RouteAroundPillars checks the rendered route for two pillars
// next to the entrance: down the first column, then along the last row.
func TestSolve_RouteAroundPillars(t *testing.T) {
	out, err := run(t, "", "solve", "-o", "0,1", "-o", "1,1", "--start", "0,0", "--goal", "4,4")
	require.NoError(t, err)
	assert.Contains(t, out, "Route (8 steps):")
	assert.True(t, strings.HasSuffix(out, "E O . . .\n* O . . .\n* . . . .\n* . . . .\n* * * * S\n"), "final grid:\n%s", out)
}

func TestSolve_NoPath(t *testing.T) {
	out, err := run(t, "", "solve", "-r", "3", "-c", "3",
		"-o", "1,0", "-o", "1,1", "-o", "1,2", "--start", "0,0", "--goal", "2,2")
	require.NoError(t, err, "no path is not a failure")
	assert.Contains(t, out, "No path found.")
	assert.Contains(t, out, "E . .\nO O O\n. . S\n")
}

func TestSolve_ScenarioFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	body := "name = \"pillar\"\nrows = 3\ncols = 4\nstart = [0, 0]\ngoal = [2, 3]\nobstacles = [[1, 1]]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := run(t, "", "solve", "--scenario", path, "--obstacle", "1,2", "--goal", "0,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario: pillar")
	assert.Contains(t, out, "E . . S\n. O O .\n. . . .\n")
	assert.Contains(t, out, "Route (3 steps):")
}

func TestSolve_Trace(t *testing.T) {
	out, err := run(t, "", "solve", "-r", "2", "-c", "3", "-o", "0,1", "--start", "0,0", "--goal", "0,2", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "step 1: expanded (0,0), 1 open")
	assert.Contains(t, out, "step 5: reached (0,2) in 4 moves")
	assert.Contains(t, out, "Route (4 steps):")
}

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"MissingGoal", []string{"solve", "--start", "0,0"}, scenario.ErrMissingEndpoint},
		{"BadStart", []string{"solve", "--start", "zero", "--goal", "1,1"}, scenario.ErrBadCoordinate},
		{"BadObstacle", []string{"solve", "-o", "1", "--start", "0,0", "--goal", "1,1"}, scenario.ErrBadCoordinate},
		{"GoalOutside", []string{"solve", "--start", "0,0", "--goal", "5,5"}, scenario.ErrOutOfBounds},
		{"ZeroRows", []string{"solve", "--rows", "0", "--start", "0,0", "--goal", "0,0"}, gridgraph.ErrInvalidDimension},
		{"NegativeBudget", []string{"solve", "--max-expansions", "-1", "--start", "0,0", "--goal", "1,1"}, astar.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSolve_BudgetExitCode(t *testing.T) {
	_, err := run(t, "", "solve", "--start", "0,0", "--goal", "4,4", "--max-expansions", "2")
	require.Error(t, err)
	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.ExitCode())
}

func TestInteractive(t *testing.T) {
	stdin := strings.Join([]string{"0,1", "bad", "1,1", "s", "0,0", "2,2"}, "\n") + "\n"
	out, err := run(t, stdin, "interactive", "--rows", "3", "--cols", "3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, ". . .\n. . .\n. . .\n"), "empty grid printed first:\n%s", out)
	assert.Contains(t, out, "Invalid input.")
	assert.Contains(t, out, "E O .\n. O .\n. . S\n")
	assert.Contains(t, out, "Heuristic distance from entrance to exit: 4")
	assert.Contains(t, out, "Route (4 steps):")
	assert.True(t, strings.HasSuffix(out, "E O .\n* O .\n* * S\n"), "final grid:\n%s", out)
}

func TestInteractive_InputEndsEarly(t *testing.T) {
	_, err := run(t, "s\n0,0\n", "interactive")
	assert.Error(t, err)
}
