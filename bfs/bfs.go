// Package bfs provides breadth-first shortest-path search over a
// maze.Grid, returning the route and expansion statistics.
package bfs

import (
	"github.com/katalvlaran/lvlmaze/maze"
)

// neighborOffsets is the canonical exploration order: up, down, left,
// right. Fixed so equal-length routes tie-break deterministically.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// walker encapsulates the mutable state of one search. Every field is
// allocated by ShortestPath and owned by that single invocation.
type walker struct {
	grid     *maze.Grid
	opts     Options
	frontier *coordQueue
	visited  []bool  // set at enqueue time
	prev     []int32 // predecessor cell index, valid iff hasPrev
	hasPrev  []bool
}

// ShortestPath runs BFS on g from start to end under 4-directional,
// unit-cost movement, applying any number of functional Options.
//
// A start or end that is out of bounds or on a wall, and an end that is
// simply unreachable, all produce Found=false with a nil error: they
// are normal search outcomes, not failures. Errors are reserved for
// engine misuse (ErrNilGrid) and context cancellation.
//
// The search terminates as soon as the end cell is dequeued. Running it
// twice over the same inputs yields identical results.
// Complexity: O(rows×cols) time and memory.
func ShortestPath(g *maze.Grid, start, end maze.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{}
	// Preconditions: both endpoints must be in bounds and passable.
	if !g.Passable(start) || !g.Passable(end) {
		return res, nil
	}
	// Trivial case: the route is the single start cell.
	if start == end {
		res.Path = []maze.Coord{start}
		res.Found = true

		return res, nil
	}

	total := g.Rows() * g.Cols()
	w := &walker{
		grid:     g,
		opts:     o,
		frontier: newCoordQueue(total),
		visited:  make([]bool, total),
		prev:     make([]int32, total),
		hasPrev:  make([]bool, total),
	}

	startIdx := int32(g.Index(start))
	endIdx := int32(g.Index(end))
	w.visited[startIdx] = true
	w.frontier.push(startIdx)

	found, err := w.run(endIdx, res)
	if err != nil {
		return nil, err
	}
	if !found {
		return res, nil
	}

	path, ok := w.reconstruct(startIdx, endIdx)
	if !ok {
		// Broken predecessor chain: cannot happen after a successful
		// run, but a missing link must read as "no path", not a panic.
		return res, nil
	}
	res.Path = path
	res.Found = true

	return res, nil
}

// run processes the frontier until the end cell is dequeued, the
// frontier empties, or the context is cancelled.
func (w *walker) run(endIdx int32, res *Result) (bool, error) {
	for !w.frontier.empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		u := w.frontier.pop()
		res.Expanded++
		w.opts.OnDequeue(w.grid.CoordOf(int(u)))
		if u == endIdx {
			return true, nil
		}
		w.enqueueNeighbors(u)
	}

	return false, nil
}

// enqueueNeighbors pushes every unvisited passable neighbor of u in the
// canonical order, marking it visited and recording u as predecessor.
func (w *walker) enqueueNeighbors(u int32) {
	cu := w.grid.CoordOf(int(u))
	for _, d := range neighborOffsets {
		nc := maze.Coord{Row: cu.Row + d[0], Col: cu.Col + d[1]}
		if !w.grid.Passable(nc) {
			continue
		}
		v := int32(w.grid.Index(nc))
		if w.visited[v] {
			continue
		}
		w.visited[v] = true
		w.prev[v] = u
		w.hasPrev[v] = true
		w.frontier.push(v)
	}
}

// reconstruct walks the predecessor links backward from endIdx until it
// reaches startIdx (detected by index equality), then reverses the
// collected coordinates into start→end order. A non-start cell with no
// predecessor link means the chain is inconsistent; reconstruct reports
// failure instead of looping.
func (w *walker) reconstruct(startIdx, endIdx int32) ([]maze.Coord, bool) {
	var path []maze.Coord
	for at := endIdx; ; {
		path = append(path, w.grid.CoordOf(int(at)))
		if at == startIdx {
			break
		}
		if !w.hasPrev[at] {
			return nil, false
		}
		at = w.prev[at]
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
