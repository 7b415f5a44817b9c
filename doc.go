// Package lvlmaze turns a glyph maze into its shortest escape route —
// parse, search, and draw the answer back onto the map.
//
// 🚀 What is lvlmaze?
//
//	A small, zero-runtime-dependency library built from three layers:
//		• maze/    — glyph text → typed immutable Grid + start/end coords
//		• bfs/     — 4-connected breadth-first shortest path with a
//		  preallocated circular frontier (no per-cell heap churn)
//		• mazegen/ — deterministic random maze generation for fixtures
//
// The root package ties them together: Solve takes a maze text block
// and returns the route, a rendered overlay, and the elapsed wall time.
//
// ✨ Why choose lvlmaze?
//
//   - Honest outcomes — "no path" is a value, never an error; errors are
//     reserved for malformed input and misuse
//   - Deterministic — fixed neighbor order, reproducible routes, seeded
//     generation
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example:
//
//	#####
//	#S  #
//	# # #
//	#  E#
//	#####
//
//	sol, err := lvlmaze.Solve(input)
//	// sol.Path  = [(1,1) (2,1) (3,1) (3,2) (3,3)]
//	// sol.Found = true
package lvlmaze
