package mec

import (
	"errors"
	"math/rand"

	"github.com/Nicolaus93/smallest-enclosing-circle/geom2d"
)

var (
	// ErrCollinearSupport indicates the three support points are collinear
	// within tolerance, so no circumcircle exists through them.
	ErrCollinearSupport = errors.New("mec: support points are collinear within tolerance")

	// ErrBadShape indicates a row-table input whose rows do not hold exactly
	// two columns (x, y).
	ErrBadShape = errors.New("mec: rows must have exactly two columns (x, y)")
)

// ContainsSlack is the tolerance Circle.Contains grants beyond the radius.
// It is deliberately looser than the predicate tolerance geom2d.Eps: the
// radius is a derived quantity (square root of an expression of products),
// so its error band is wider than the raw determinants'.
const ContainsSlack = 1e-9

// Circle is the result of one computation: a center and a non-negative
// radius. It has no lifecycle beyond construction — build it, read it.
type Circle struct {
	Center geom2d.Point
	Radius float64
}

// Contains reports whether p lies inside or on c, with ContainsSlack
// tolerance beyond the radius.
//
// Complexity: O(1).
func (c Circle) Contains(p geom2d.Point) bool {
	return c.ContainsWithin(p, ContainsSlack)
}

// ContainsWithin reports whether p lies within distance c.Radius+tol of the
// center. Negative tol is permitted and tightens the test.
//
// Complexity: O(1).
func (c Circle) ContainsWithin(p geom2d.Point, tol float64) bool {
	return c.Center.Distance(p) <= c.Radius+tol
}

// options carries the Solve configuration assembled from Option values.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	seed   int64
	rng    *rand.Rand
	strict bool
}

// Option configures Solve.
type Option func(*options)

// WithSeed makes the permutation deterministic for the given seed.
// Policy: seed==0 maps to a fixed default seed (see rng.go), so the zero
// Option set is still fully reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the generator directly, taking precedence over WithSeed.
// The generator is consumed for one shuffle; callers running concurrent
// Solves must pass a distinct *rand.Rand to each (math/rand.Rand is not
// goroutine-safe). Panics on nil (programmer error).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mec: WithRand requires a non-nil *rand.Rand")
	}

	return func(o *options) { o.rng = r }
}

// WithStrictDegenerate disables the collinear fallback: Solve returns
// ErrCollinearSupport instead of the diameter circle of the extreme pair.
func WithStrictDegenerate() Option {
	return func(o *options) { o.strict = true }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) options {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
