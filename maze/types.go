// Package maze defines the cell model, coordinates, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/lvlmaze.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing and grid construction.
var (
	// ErrMalformedMaze indicates empty input or rows of differing lengths.
	ErrMalformedMaze = errors.New("maze: malformed maze")
	// ErrMissingEndpoint indicates the maze has no start or no end glyph.
	ErrMissingEndpoint = errors.New("maze: missing start or end glyph")
)

// Glyphs recognized by Parse. Any rune outside this set is passable.
const (
	GlyphWall  = '#'
	GlyphFree  = ' '
	GlyphDot   = '.' // alternate free-space glyph
	GlyphStart = 'S'
	GlyphEnd   = 'E'
	// GlyphTrail marks visited path cells in RenderPath output.
	GlyphTrail = '·'
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Passable cells admit traversal.
	Passable Cell = iota
	// Wall cells block traversal.
	Wall
)

// Coord addresses a cell by zero-based (Row, Col).
type Coord struct {
	Row, Col int
}

// Grid is a rectangular, row-major store of cell states.
// It is immutable once constructed; concurrent readers need no locking.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: cells[r*cols+c]
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// The input is copied, so later mutation of rows does not affect the Grid.
// Returns ErrMalformedMaze (wrapped) if rows is empty or ragged.
// Complexity: O(rows×cols).
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedMaze)
	}
	h, w := len(rows), len(rows[0])
	for r := 1; r < h; r++ {
		if len(rows[r]) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedMaze, r, len(rows[r]), w)
		}
	}
	cells := make([]Cell, h*w)
	for r := 0; r < h; r++ {
		copy(cells[r*w:(r+1)*w], rows[r])
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows reports the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell state at c. The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) At(c Coord) Cell {
	return g.cells[c.Row*g.cols+c.Col]
}

// Passable reports whether c is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Passable
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordOf converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Maze is the product of Parse: the typed grid, the start and end
// coordinates, and the original glyph rows retained for rendering.
type Maze struct {
	Grid  *Grid
	Start Coord
	End   Coord

	glyphs [][]rune
}
