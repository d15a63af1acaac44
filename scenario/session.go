package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/routecalc/gridgraph"
)

// FinishToken ends obstacle entry in a Session.
const FinishToken = "s"

// Session runs the console dialogue: prompts go to out, answers are read
// line by line from in. Bad answers are reported and asked again.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession returns a Session reading from in and prompting on out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// ReadObstacles collects obstacle coordinates until FinishToken (any case)
// or end of input. Coordinates are not bounds-checked here; the grid drops
// out-of-range obstacles.
func (s *Session) ReadObstacles() ([]gridgraph.Cell, error) {
	var cells []gridgraph.Cell
	for {
		fmt.Fprintf(s.out, "Enter an obstacle position 'row,col' or '%s' to finish: ", FinishToken)
		line, ok, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if !ok || strings.EqualFold(line, FinishToken) {
			return cells, nil
		}
		c, err := ParseCell(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please use the format 'row,col'.")
			continue
		}
		cells = append(cells, c)
	}
}

// ReadCell asks for the named position until a valid coordinate is entered.
// When g is non-nil the cell must also lie inside it.
// End of input before a valid answer yields io.ErrUnexpectedEOF.
func (s *Session) ReadCell(label string, g *gridgraph.Grid) (gridgraph.Cell, error) {
	for {
		fmt.Fprintf(s.out, "Enter the %s position in the format 'row,col': ", label)
		line, ok, err := s.readLine()
		if err != nil {
			return gridgraph.Cell{}, err
		}
		if !ok {
			return gridgraph.Cell{}, fmt.Errorf("scenario: reading %s: %w", label, io.ErrUnexpectedEOF)
		}
		c, err := ParseCell(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please use the format 'row,col'.")
			continue
		}
		if g != nil && !g.InBounds(c) {
			fmt.Fprintf(s.out, "Position %v is outside the %d×%d grid.\n", c, g.Rows, g.Cols)
			continue
		}
		return c, nil
	}
}

// readLine returns the next trimmed line; ok is false at end of input.
func (s *Session) readLine() (line string, ok bool, err error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", false, fmt.Errorf("scenario: read input: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimSpace(s.in.Text()), true, nil
}
