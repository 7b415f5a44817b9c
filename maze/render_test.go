package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/maze"
)

// TestRenderPath_Overlay verifies the trail glyph is drawn on interior
// path cells while 'S' and 'E' stay visible.
func TestRenderPath_Overlay(t *testing.T) {
	m, err := maze.Parse(tiny)
	require.NoError(t, err)

	path := []maze.Coord{
		{Row: 1, Col: 1}, // S — kept
		{Row: 2, Col: 1},
		{Row: 3, Col: 1},
		{Row: 3, Col: 2},
		{Row: 3, Col: 3}, // E — kept
	}
	want := "#####\n" +
		"#S  #\n" +
		"#·# #\n" +
		"#··E#\n" +
		"#####"
	assert.Equal(t, want, m.RenderPath(path))
}

// TestRenderPath_Empty leaves the maze untouched for a nil path.
func TestRenderPath_Empty(t *testing.T) {
	m, err := maze.Parse(tiny)
	require.NoError(t, err)
	assert.Equal(t, tiny, m.RenderPath(nil))
}

// TestRenderPath_IgnoresOutOfBounds drops coordinates outside the grid
// instead of panicking.
func TestRenderPath_IgnoresOutOfBounds(t *testing.T) {
	m, err := maze.Parse(tiny)
	require.NoError(t, err)

	got := m.RenderPath([]maze.Coord{{Row: -3, Col: 0}, {Row: 99, Col: 99}, {Row: 1, Col: 2}})
	want := "#####\n" +
		"#S· #\n" +
		"# # #\n" +
		"#  E#\n" +
		"#####"
	assert.Equal(t, want, got)
}

// TestRenderPath_DoesNotMutate confirms rendering never alters the
// parsed maze.
func TestRenderPath_DoesNotMutate(t *testing.T) {
	m, err := maze.Parse(tiny)
	require.NoError(t, err)

	_ = m.RenderPath([]maze.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}})
	assert.Equal(t, tiny, m.String())
}
