// Command lpadroute is a runnable demonstration of the lpastar engine:
// it loads a grid (from a CSV file, or falls back to a synthetic
// uniform grid when none is given), computes an initial shortest path,
// applies any --obstacle flags, and reruns the search to show LPA*
// repairing the plan instead of recomputing it — generalizing
// original_source/main.c's hard-coded "Simulating Dynamic Change"
// demo to an arbitrary number of obstacles.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/go-lpastar/lpastar/gridworld"
	"github.com/go-lpastar/lpastar/lpastar"
	"github.com/go-lpastar/lpastar/pathviz"
)

// obstacleFlags collects repeated --obstacle row,col flags.
type obstacleFlags []lpastar.VertexID

func (o *obstacleFlags) String() string {
	parts := make([]string, len(*o))
	for i, v := range *o {
		parts[i] = fmt.Sprintf("%d,%d", v[0], v[1])
	}
	return strings.Join(parts, ";")
}

func (o *obstacleFlags) Set(value string) error {
	row, col, err := parseCoord(value)
	if err != nil {
		return err
	}
	*o = append(*o, lpastar.VertexID{row, col})
	return nil
}

func parseCoord(value string) (int, int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"row,col\", got %q", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q: %w", value, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col in %q: %w", value, err)
	}
	return row, col, nil
}

func main() {
	csvPath := flag.String("csv", "", "path to a CSV grid of per-cell costs (falls back to a 32x32 uniform grid if empty)")
	startFlag := flag.String("start", "0,0", "start cell as row,col")
	goalFlag := flag.String("goal", "", "goal cell as row,col (defaults to the grid center)")
	var obstacles obstacleFlags
	flag.Var(&obstacles, "obstacle", "row,col of a cell to block after the initial search; may be repeated")
	flag.Parse()

	g, err := loadGrid(*csvPath)
	if err != nil {
		log.Fatal("loading grid", "err", err)
	}

	start, err := parseVertex(*startFlag)
	if err != nil {
		log.Fatal("parsing --start", "err", err)
	}
	goal, err := resolveGoal(*goalFlag, g)
	if err != nil {
		log.Fatal("parsing --goal", "err", err)
	}

	log.Info("grid loaded", "rows", g.Rows(), "cols", g.Cols(), "start", start, "goal", goal)

	e, err := lpastar.New(g.Rows(), g.Cols(), start, goal, g.CostOracle(), g.ManhattanHeuristic(goal))
	if err != nil {
		log.Fatal("constructing engine", "err", err)
	}

	report(e, g, start, goal, "initial search")

	if len(obstacles) > 0 {
		for _, v := range obstacles {
			if err := g.SetCost(v, gridworld.BlockedThreshold); err != nil {
				log.Fatal("setting obstacle cost", "cell", v, "err", err)
			}
			for _, n := range e.Predecessors(v) {
				e.NotifyEdgeCostChanged(n, v)
			}
			log.Info("obstacle applied", "cell", v)
		}
		report(e, g, start, goal, "after replanning")
	}
}

// loadGrid reads path as CSV, or falls back to a synthetic 32x32
// uniform-cost grid, mirroring original_source/main.c's "default
// costs" fallback when maze_01.csv is absent.
func loadGrid(path string) (gridworld.Grid, error) {
	if path == "" {
		log.Info("no --csv given, using a synthetic 32x32 uniform grid")
		return gridworld.NewUniform(32, 32, 1), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return gridworld.Grid{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return gridworld.LoadCSV(f)
}

func parseVertex(s string) (lpastar.VertexID, error) {
	row, col, err := parseCoord(s)
	return lpastar.VertexID{row, col}, err
}

// resolveGoal parses s, or defaults to the grid's center cell, as
// original_source/main.c's initialize() places the goal at
// (ROWS/2, COLS/2).
func resolveGoal(s string, g gridworld.Grid) (lpastar.VertexID, error) {
	if s == "" {
		return lpastar.VertexID{g.Rows() / 2, g.Cols() / 2}, nil
	}
	return parseVertex(s)
}

func report(e *lpastar.Engine, g gridworld.Grid, start, goal lpastar.VertexID, label string) {
	if err := e.ComputeShortestPath(); err != nil {
		log.Warn(label, "result", "no path", "err", err)
		return
	}

	path, err := pathviz.ReconstructPath(e, start, goal)
	if err != nil {
		log.Warn(label, "reconstructing path", err)
		return
	}

	log.Info(label, "path_cost", e.PathCost())
	fmt.Print(pathviz.Render(g, path))
}
