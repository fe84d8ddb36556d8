package pathviz

import (
	"fmt"
	"strings"

	"github.com/go-lpastar/lpastar/gridworld"
	"github.com/go-lpastar/lpastar/lpastar"
)

// Render draws g as an ASCII grid, reproducing original_source/main.c's
// print_maze format: blocked cells print as "[ # ]", ordinary cells as
// "[%2.0f]" of their cost, and every cell in path additionally prints
// as "[ * ]" overlaid on top of that base rendering.
func Render(g gridworld.Grid, path []lpastar.VertexID) string {
	onPath := make(map[lpastar.VertexID]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}

	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := lpastar.VertexID{row, col}
			switch {
			case onPath[v]:
				b.WriteString("[ * ]")
			case g.IsBlocked(v):
				b.WriteString("[ # ]")
			default:
				fmt.Fprintf(&b, "[%2.0f]", g.CostAt(row, col))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
