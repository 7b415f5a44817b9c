package lvlmaze

import (
	"time"

	"github.com/katalvlaran/lvlmaze/bfs"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Solution is the outcome of solving one maze text block.
type Solution struct {
	// Path holds the route from start to end inclusive; nil when no
	// route exists.
	Path []maze.Coord
	// Found reports whether a route exists.
	Found bool
	// Rendered is the maze with the route drawn over it ('·' on every
	// path cell, 'S'/'E' kept). Empty when Found is false.
	Rendered string
	// Elapsed is the wall time spent parsing and searching.
	Elapsed time.Duration
}

// Solve parses text, runs the shortest-path search, and renders the
// route. Parse failures propagate as errors (test them with errors.Is
// against maze.ErrMalformedMaze / maze.ErrMissingEndpoint); an
// unreachable end is a normal Solution with Found=false.
// Solve performs no I/O.
func Solve(text string) (*Solution, error) {
	started := time.Now()

	m, err := maze.Parse(text)
	if err != nil {
		return nil, err
	}
	res, err := bfs.ShortestPath(m.Grid, m.Start, m.End)
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Path:    res.Path,
		Found:   res.Found,
		Elapsed: time.Since(started),
	}
	if res.Found {
		sol.Rendered = m.RenderPath(res.Path)
	}

	return sol, nil
}
