// Package bfs provides tunable options and error definitions for
// breadth-first search over a maze.Grid.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlmaze/maze"
)

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("bfs: grid is nil")

// Option configures search behavior via functional arguments.
// Nil contexts and nil hooks are ignored, keeping the defaults.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; it is polled once per
	// dequeue, so a deadline takes effect between cell expansions.
	Ctx context.Context

	// OnDequeue is called for each cell as it is taken off the frontier,
	// immediately before its neighbors are explored.
	OnDequeue func(c maze.Coord)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnDequeue hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func(maze.Coord) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDequeue registers a callback to run on every dequeue.
func WithOnDequeue(fn func(c maze.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of one search:
//   - Path:     coordinates from start to end inclusive; nil when no
//     route exists.
//   - Found:    whether a route exists. Distinguishes "valid maze,
//     unreachable end" (Found=false, err=nil) from engine misuse
//     (err != nil).
//   - Expanded: number of cells dequeued during the search.
type Result struct {
	Path     []maze.Coord
	Found    bool
	Expanded int
}

// Len reports the number of coordinates in the path (0 when not found).
func (r *Result) Len() int { return len(r.Path) }

// Steps reports the edge count of the path: Len()-1, or 0 when not found.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
