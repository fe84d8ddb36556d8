package gridworld_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lpastar/lpastar/gridworld"
	"github.com/go-lpastar/lpastar/lpastar"
)

func TestNewUniform(t *testing.T) {
	g := gridworld.NewUniform(3, 4, 2)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 2.0, g.CostAt(1, 2))
}

func TestLoadCSV(t *testing.T) {
	csv := "1,1,1\n1,0,1\n1,1,1\n"
	g, err := gridworld.LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	// a zero value defaults to DefaultCost
	require.Equal(t, gridworld.DefaultCost, g.CostAt(1, 1))
}

func TestLoadCSVNonRectangular(t *testing.T) {
	csv := "1,1,1\n1,1\n"
	_, err := gridworld.LoadCSV(strings.NewReader(csv))
	require.ErrorIs(t, err, gridworld.ErrNonRectangular)
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := gridworld.LoadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, gridworld.ErrEmptyGrid)
}

func TestSetCostOutOfBounds(t *testing.T) {
	g := gridworld.NewUniform(2, 2, 1)
	err := g.SetCost(lpastar.VertexID{5, 5}, 10)
	require.ErrorIs(t, err, gridworld.ErrOutOfBounds)
}

func TestIsBlocked(t *testing.T) {
	g := gridworld.NewUniform(2, 2, 1)
	require.NoError(t, g.SetCost(lpastar.VertexID{0, 0}, gridworld.BlockedThreshold))
	require.True(t, g.IsBlocked(lpastar.VertexID{0, 0}))
	require.False(t, g.IsBlocked(lpastar.VertexID{1, 1}))
}

func TestCostOracleChargesDestinationCell(t *testing.T) {
	g := gridworld.NewUniform(2, 2, 1)
	require.NoError(t, g.SetCost(lpastar.VertexID{1, 1}, 9))
	cost := g.CostOracle()
	require.Equal(t, 9.0, cost(lpastar.VertexID{0, 1}, lpastar.VertexID{1, 1}))
	require.Equal(t, 1.0, cost(lpastar.VertexID{1, 1}, lpastar.VertexID{0, 1}))
}

func TestNewWithOptions(t *testing.T) {
	g := gridworld.New(2, 2, 1, gridworld.WithBlockedThreshold(5))
	require.NoError(t, g.SetCost(lpastar.VertexID{0, 0}, 5))
	require.True(t, g.IsBlocked(lpastar.VertexID{0, 0}))
	require.False(t, gridworld.NewUniform(2, 2, 1).IsBlocked(lpastar.VertexID{0, 0}))
}

func TestLoadWithOptions(t *testing.T) {
	csv := "1,0,1\n"
	g, err := gridworld.Load(strings.NewReader(csv), gridworld.WithDefaultCost(7))
	require.NoError(t, err)
	require.Equal(t, 7.0, g.CostAt(0, 1))
}

func TestManhattanHeuristic(t *testing.T) {
	g := gridworld.NewUniform(5, 5, 1)
	h := g.ManhattanHeuristic(lpastar.VertexID{4, 4})
	require.Equal(t, 8.0, h(lpastar.VertexID{0, 0}))
	require.Equal(t, 0.0, h(lpastar.VertexID{4, 4}))
}
