// Package maze parses glyph mazes into an immutable, typed 2D grid
// and renders solved paths back onto the original glyphs.
//
// What:
//
//   - Parse converts a text block into a Grid of {Passable, Wall} cells
//     plus the designated start and end coordinates.
//   - Grid is a rectangular, row-major cell store, immutable once built,
//     with O(1) bounds checks and index↔coordinate mapping.
//   - Maze retains the original glyph rows, so RenderPath can overlay a
//     computed route without re-reading the input.
//
// Glyph contract:
//
//	'#'        — wall
//	' ' or '.' — passable
//	'S'        — start (passable; the last occurrence wins)
//	'E'        — end   (passable; the last occurrence wins)
//	anything else — passable
//
// The permissive "unknown glyph ⇒ passable" rule is deliberate: it lets
// annotated or decorated mazes (coordinates in the margin, markers on
// corridors) parse without a strict-mode switch.
//
// Why:
//
//   - A typed enum grid removes the magic-integer cell encoding from the
//     traversal layer.
//   - One parse, many searches: the Grid is read-only during a search and
//     may be shared by any number of concurrent solvers.
//
// Complexity:
//
//   - Parse:      O(rows×cols) time and memory.
//   - RenderPath: O(rows×cols + len(path)).
//
// Errors:
//
//   - ErrMalformedMaze: empty input or rows of differing lengths.
//   - ErrMissingEndpoint: no 'S' or no 'E' glyph present.
package maze
