// Package mazegen generates random solvable glyph mazes on the
// odd-coordinate cell lattice.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvlmaze/maze"
)

// ErrBadDimension indicates rows or cols is even or too small.
var ErrBadDimension = errors.New("mazegen: rows and cols must be odd and >= 5")

// minDim is the smallest usable maze side: border + corridor + wall +
// corridor + border.
const minDim = 5

// defaultSeed keeps Generate deterministic when no seed is supplied.
const defaultSeed int64 = 1

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed drives the carving walk; equal seeds yield identical mazes.
	Seed int64
}

// DefaultOptions returns Options with Seed=1.
func DefaultOptions() Options {
	return Options{Seed: defaultSeed}
}

// WithSeed fixes the random source for reproducible mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// lattice directions: up, down, left, right in logical-cell steps.
var cellOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Generate emits a rows×cols maze text block. The outer ring is wall,
// corridors occupy odd coordinates, 'S' sits at (1,1) and 'E' at
// (rows-2, cols-2). The corridor system is a spanning tree, so the
// maze is always solvable.
// Returns ErrBadDimension (wrapped) unless both sides are odd and ≥ 5.
// Complexity: O(rows×cols).
func Generate(rows, cols int, opts ...Option) (string, error) {
	if rows < minDim || cols < minDim || rows%2 == 0 || cols%2 == 0 {
		return "", fmt.Errorf("%w: got %d×%d", ErrBadDimension, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := rand.New(rand.NewSource(o.Seed))

	// All wall; carving opens corridors.
	glyphs := make([][]rune, rows)
	for r := range glyphs {
		glyphs[r] = []rune(strings.Repeat(string(maze.GlyphWall), cols))
	}

	carve(glyphs, (rows-1)/2, (cols-1)/2, rng)

	glyphs[1][1] = maze.GlyphStart
	glyphs[rows-2][cols-2] = maze.GlyphEnd

	lines := make([]string, rows)
	for r, row := range glyphs {
		lines[r] = string(row)
	}

	return strings.Join(lines, "\n"), nil
}

// carve runs an iterative backtracker over the cellRows×cellCols
// logical lattice. Logical cell (i,j) maps to glyph (2i+1, 2j+1); the
// wall glyph between two adjacent cells is their midpoint.
func carve(glyphs [][]rune, cellRows, cellCols int, rng *rand.Rand) {
	visited := make([]bool, cellRows*cellCols)
	type cell struct{ r, c int }
	stack := []cell{{0, 0}}
	visited[0] = true
	glyphs[1][1] = maze.GlyphFree

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Unvisited lattice neighbors of cur, in canonical order.
		var next []cell
		for _, d := range cellOffsets {
			n := cell{r: cur.r + d[0], c: cur.c + d[1]}
			if n.r < 0 || n.r >= cellRows || n.c < 0 || n.c >= cellCols {
				continue
			}
			if !visited[n.r*cellCols+n.c] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		visited[n.r*cellCols+n.c] = true
		// Open the destination cell and the wall between.
		glyphs[2*n.r+1][2*n.c+1] = maze.GlyphFree
		glyphs[cur.r+n.r+1][cur.c+n.c+1] = maze.GlyphFree
		stack = append(stack, n)
	}
}
