// Package bfs computes unweighted shortest paths on a maze.Grid via
// breadth-first search over the 4-connected lattice.
//
// What
//
//   - ShortestPath explores passable cells in non-decreasing distance
//     (step count) from a start coordinate until the end coordinate is
//     dequeued, then reconstructs the route from predecessor links.
//   - Returns a Result containing:
//   - Path:     coordinates from start to end inclusive (nil if none)
//   - Found:    whether a route exists
//   - Expanded: number of cells dequeued, for instrumentation
//   - Supports context cancellation via WithContext and an OnDequeue
//     hook via WithOnDequeue.
//
// Why
//
//   - BFS visits cells in strictly non-decreasing distance from the
//     source, so on a unit-cost grid the first route that reaches the
//     end is a shortest route.
//   - The frontier is a fixed-capacity circular queue of cell indices
//     sized to rows×cols up front: each cell is enqueued at most once,
//     so the backing array never grows and the search performs no
//     per-cell heap allocation.
//
// Determinism
//
//	Neighbors are explored in the fixed order up, down, left, right.
//	When several shortest routes exist, that order breaks the tie, so
//	the returned path is fully reproducible.
//
// Design points
//
//   - A cell is marked visited when it is *enqueued*, not when it is
//     dequeued; this caps the frontier at one entry per cell and keeps
//     the O(rows×cols) bound.
//   - The search stops the moment the end cell is *dequeued*.
//   - An unreachable end, or a start/end that is out of bounds or on a
//     wall, yields Found=false — a normal outcome, never an error.
//   - Predecessors are stored as a cell-index array with an explicit
//     presence bit per cell; no sentinel values.
//
// Concurrency
//
//	A search owns all of its working storage (frontier, visited set,
//	predecessor links) for the duration of one call. The Grid itself is
//	read-only, so any number of searches may run concurrently over the
//	same Grid.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C)  (each cell enqueued and dequeued at most once)
//   - Memory: O(R×C)  (frontier, visited set, predecessor links)
//
// Usage
//
//	res, err := bfs.ShortestPath(m.Grid, m.Start, m.End)
//	if err != nil {
//	    // ErrNilGrid or a context error
//	}
//	if !res.Found {
//	    // valid maze, unreachable end
//	}
//	fmt.Println(res.Path)
//
// Errors
//
//   - ErrNilGrid if the grid pointer is nil.
//   - ctx.Err()  if the supplied context is cancelled mid-search.
package bfs
