// Package mec computes the minimum enclosing circle (MEC) of a finite 2-D
// point set via Welzl's randomized incremental construction.
//
// What:
//
//   - Solve — shuffle the input with a call-owned seeded RNG, run the
//     iterative move-to-front support scan, and materialize the circle from
//     the final support set (at most 3 points).
//   - Circumcircle — the unique circle through three non-collinear points,
//     with the collinearity check performed before the division.
//   - FromRows / SolveRows — adapter for callers holding an N×2 numeric
//     row table instead of []geom2d.Point.
//
// Why:
//
//   - Bounding-volume primitive for collision checks, spatial clustering
//     and geometric preprocessing.
//   - Deterministic by construction: the permutation comes from an injected
//     seed (or *rand.Rand), never from process-wide random state, so runs
//     reproduce exactly and concurrent calls never share a generator.
//
// Algorithm:
//
//	The scan keeps a cursor over the shuffled points and a support set of at
//	most three input indices. A point already enclosed by the circle implied
//	by the support advances the cursor; a violating point evicts every
//	support index not greater than the cursor, joins the support, and — while
//	the support holds fewer than three points — restarts the scan from the
//	front, since a circle through fewer than three support points is
//	provisional. Random pre-shuffling makes the expected number of restarts
//	linear, matching Welzl's O(n) expected bound.
//
// Degenerate inputs:
//
//	A collinear support triple cannot define a circumcircle. Circumcircle
//	surfaces that as ErrCollinearSupport, and Solve's default policy falls
//	back to the diameter circle of the input's extreme pair (which covers a
//	collinear set exactly); WithStrictDegenerate() surfaces the error to the
//	caller instead.
//
// Options:
//
//   - WithSeed(seed) — deterministic permutation; seed 0 maps to a fixed
//     default.
//   - WithRand(r)    — caller-supplied generator (takes precedence over seed).
//   - WithStrictDegenerate() — return ErrCollinearSupport instead of the
//     fallback diameter circle.
//
// Errors:
//
//   - ErrCollinearSupport: final support triple is collinear within tolerance.
//   - ErrBadShape: a row of the adapter input does not have exactly two columns.
//
// Complexity:
//
//   - Time: expected O(n) predicate evaluations after the shuffle; worst
//     case O(n²) for adversarial orders, which the shuffle exists to avoid.
//   - Memory: O(n) for the shuffled copy; the support set is a fixed
//     3-slot array, so the hot loop allocates nothing.
package mec
