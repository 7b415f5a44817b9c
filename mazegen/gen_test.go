package mazegen_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/bfs"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazegen"
)

// TestGenerate_BadDimensions rejects even or undersized sides.
func TestGenerate_BadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{4, 5}, {5, 4}, {3, 5}, {5, 3}, {0, 0}, {-5, 5}, {6, 6}} {
		_, err := mazegen.Generate(dims[0], dims[1])
		assert.ErrorIs(t, err, mazegen.ErrBadDimension, "dims %v", dims)
	}
}

// TestGenerate_Deterministic: equal seeds yield byte-identical mazes,
// distinct seeds yield distinct mazes.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := mazegen.Generate(21, 21, mazegen.WithSeed(5))
	require.NoError(t, err)
	b, err := mazegen.Generate(21, 21, mazegen.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the maze")

	c, err := mazegen.Generate(21, 21, mazegen.WithSeed(6))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

// TestGenerate_Shape checks dimensions, the closed border, and the
// endpoint placement.
func TestGenerate_Shape(t *testing.T) {
	const rows, cols = 15, 27
	text, err := mazegen.Generate(rows, cols, mazegen.WithSeed(2))
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, rows)
	for r, line := range lines {
		require.Len(t, []rune(line), cols, "row %d", r)
	}

	// border is solid wall
	for c := 0; c < cols; c++ {
		assert.Equal(t, maze.GlyphWall, []rune(lines[0])[c])
		assert.Equal(t, maze.GlyphWall, []rune(lines[rows-1])[c])
	}
	for r := 0; r < rows; r++ {
		assert.Equal(t, maze.GlyphWall, []rune(lines[r])[0])
		assert.Equal(t, maze.GlyphWall, []rune(lines[r])[cols-1])
	}

	m, err := maze.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, maze.Coord{Row: 1, Col: 1}, m.Start)
	assert.Equal(t, maze.Coord{Row: rows - 2, Col: cols - 2}, m.End)
}

// TestGenerate_Solvable: every generated maze parses and has a route —
// the carving walk produces a spanning tree over the corridor cells.
func TestGenerate_Solvable(t *testing.T) {
	for _, side := range []int{5, 9, 21, 51} {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("side=%d/seed=%d", side, seed), func(t *testing.T) {
				text, err := mazegen.Generate(side, side, mazegen.WithSeed(seed))
				require.NoError(t, err)

				m, err := maze.Parse(text)
				require.NoError(t, err)

				res, err := bfs.ShortestPath(m.Grid, m.Start, m.End)
				require.NoError(t, err)
				assert.True(t, res.Found, "generated maze must be solvable")

				// the route can never beat the Manhattan distance
				manhattan := (m.End.Row - m.Start.Row) + (m.End.Col - m.Start.Col)
				assert.GreaterOrEqual(t, res.Steps(), manhattan)
			})
		}
	}
}
