package gridgraph

import "strings"

// PathGlyph marks path cells that are neither Start nor Goal in Render output.
const PathGlyph = "*"

// Render draws the grid one row per line, cells separated by a single space:
// "." free, "O" obstacle, "E" start, "S" goal. Cells of path that are Free
// are drawn as PathGlyph. Out-of-bounds path cells are ignored; path may be nil.
func (g *Grid) Render(path []Cell) string {
	onPath := make(map[int]struct{}, len(path))
	for _, c := range path {
		if g.InBounds(c) {
			onPath[g.index(c)] = struct{}{}
		}
	}

	var sb strings.Builder
	sb.Grow(g.Rows * g.Cols * 2)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			i := r*g.Cols + c
			s := g.cells[i]
			if _, ok := onPath[i]; ok && s == Free {
				sb.WriteString(PathGlyph)
				continue
			}
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
