package maze

import "strings"

// String reconstructs the parsed glyph block, rows joined by '\n'.
func (m *Maze) String() string {
	rows := make([]string, len(m.glyphs))
	for r, row := range m.glyphs {
		rows[r] = string(row)
	}

	return strings.Join(rows, "\n")
}

// RenderPath returns the maze glyphs with GlyphTrail ('·') written over
// every path cell. The start and end glyphs are left intact so the route
// endpoints stay visible. Path coordinates outside the grid are ignored.
// Complexity: O(rows×cols + len(path)).
func (m *Maze) RenderPath(path []Coord) string {
	overlay := make([][]rune, len(m.glyphs))
	for r, row := range m.glyphs {
		overlay[r] = append([]rune(nil), row...)
	}
	for _, c := range path {
		if !m.Grid.InBounds(c) {
			continue
		}
		if ch := overlay[c.Row][c.Col]; ch == GlyphStart || ch == GlyphEnd {
			continue
		}
		overlay[c.Row][c.Col] = GlyphTrail
	}

	rows := make([]string, len(overlay))
	for r, row := range overlay {
		rows[r] = string(row)
	}

	return strings.Join(rows, "\n")
}
