package maze

import (
	"fmt"
	"strings"
)

// Parse converts a glyph text block into a Maze.
//
// Behavior:
//  1. Leading and trailing whitespace is stripped from the whole block
//     only — never per row, since interior spaces are corridors.
//  2. Rows are split on '\n'. Every row must have the same rune length
//     as row 0, else ErrMalformedMaze.
//  3. Glyphs map per the package contract: '#' → Wall; ' ' and '.' →
//     Passable; 'S'/'E' → Passable plus start/end (if a glyph repeats,
//     the last occurrence wins); any other rune → Passable.
//  4. If no start or no end glyph was seen, ErrMissingEndpoint.
//
// Parse is a pure function of its input: no I/O, no shared state.
// Complexity: O(rows×cols) time and memory.
func Parse(text string) (*Maze, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: input is empty", ErrMalformedMaze)
	}
	lines := strings.Split(trimmed, "\n")

	glyphs := make([][]rune, len(lines))
	for r, line := range lines {
		glyphs[r] = []rune(line)
	}
	width := len(glyphs[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrMalformedMaze)
	}

	cells := make([][]Cell, len(glyphs))
	var start, end Coord
	var haveStart, haveEnd bool
	for r, row := range glyphs {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedMaze, r, len(row), width)
		}
		cells[r] = make([]Cell, width)
		for c, ch := range row {
			switch ch {
			case GlyphWall:
				cells[r][c] = Wall
			case GlyphStart:
				cells[r][c] = Passable
				start, haveStart = Coord{Row: r, Col: c}, true
			case GlyphEnd:
				cells[r][c] = Passable
				end, haveEnd = Coord{Row: r, Col: c}, true
			case GlyphFree, GlyphDot:
				cells[r][c] = Passable
			default:
				// Deliberate leniency: unrecognized glyphs are corridors,
				// so annotated or decorated mazes still parse.
				cells[r][c] = Passable
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no %q found", ErrMissingEndpoint, GlyphStart)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%w: no %q found", ErrMissingEndpoint, GlyphEnd)
	}

	grid, err := NewGrid(cells)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: grid, Start: start, End: end, glyphs: glyphs}, nil
}
