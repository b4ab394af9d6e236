// Package enclosing is your go-to toolkit for computing the minimum
// enclosing circle (MEC) of a 2-D point set — the smallest circle that
// contains every point.
//
// 🚀 What is smallest-enclosing-circle?
//
//	A small, deterministic, pure-Go library built around Welzl's
//	randomized incremental construction:
//	  • Robust predicates: orient2d & the classic in-circle determinant
//	  • Iterative move-to-front scan — no recursion, no stack blowups
//	  • Seeded, injectable randomness — reproducible results by design
//	  • Explicit degenerate handling — collinear inputs never panic
//
// ✨ Why choose it?
//
//   - Expected O(n) — random pre-shuffle gives Welzl's linear bound
//   - Allocation-light — the support set lives in a fixed 3-slot array
//   - Honest errors — sentinel errors, never a crash on bad geometry
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	geom2d/ — Point, distances, orientation & in-circle predicates
//	mec/    — the incremental algorithm, driver, options and row adapter
//
// Quick ASCII example:
//
//	      ·  ·
//	   ·   ╭───╮   the MEC touches at most three
//	      ·│ × │·  of the input points (its support)
//	       ╰───╯
//	         ·
//
// Dive into examples/ for runnable walkthroughs, or start with:
//
//	circle, err := mec.Solve(points, mec.WithSeed(42))
//
//	go get github.com/Nicolaus93/smallest-enclosing-circle
package enclosing
