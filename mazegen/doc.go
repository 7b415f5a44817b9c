// Package mazegen produces random, fully connected glyph mazes that
// parse cleanly with lvlmaze/maze and always contain a solvable route.
//
// What:
//
//   - Generate(rows, cols) emits a maze text block: a closed '#' border,
//     corridors carved on the odd-coordinate cell lattice, 'S' in the
//     top-left corridor cell and 'E' in the bottom-right one.
//   - Carving uses an iterative random-walk backtracker, so the corridor
//     system is a spanning tree: every open cell is reachable and there
//     is exactly one route between any two cells.
//
// Why:
//
//   - Test and benchmark fixtures of any size without hand-drawing maps.
//   - A deterministic seed (WithSeed) makes every fixture reproducible:
//     the same seed always yields a byte-identical maze.
//
// Constraints:
//
//   - rows and cols must both be odd and ≥ 5 (the lattice needs a wall
//     column between corridors and a border on each side), otherwise
//     ErrBadDimension.
//
// Complexity:
//
//   - Time:   O(rows×cols)  (each lattice cell carved once)
//   - Memory: O(rows×cols)
package mazegen
