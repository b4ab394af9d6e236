package mec

import "github.com/Nicolaus93/smallest-enclosing-circle/geom2d"

// Solve computes the minimum enclosing circle of points.
//
// The input slice is copied before shuffling, so the caller's slice is never
// reordered or mutated and may be reused across calls (the benchmark pattern).
// An empty input yields the zero Circle and a nil error; callers wanting a
// distinguished "no points" signal should check len(points) themselves.
//
// Determinism: the permutation is drawn from a generator owned by this call —
// built from WithSeed (0 ⇒ fixed default) or supplied via WithRand. The same
// seed over the same input reproduces the exact scan path; different seeds
// agree on the resulting circle within floating-point tolerance, since the
// minimum enclosing circle is unique.
//
// Degenerate support: when the final support triple is collinear within
// tolerance (possible only for pathological inputs, e.g. an entirely
// collinear set), the default policy returns the fallback diameter circle of
// the input's extreme pair. WithStrictDegenerate() returns
// ErrCollinearSupport instead; no other error is possible.
//
// Complexity: expected O(n) time after the O(n) shuffle; O(n) memory for the
// working copy.
func Solve(points []geom2d.Point, opts ...Option) (Circle, error) {
	cfg := gatherOptions(opts...)
	if len(points) == 0 {
		return Circle{}, nil
	}

	shuffled := make([]geom2d.Point, len(points))
	copy(shuffled, points)

	rng := cfg.rng
	if rng == nil {
		rng = rngFromSeed(cfg.seed)
	}
	shufflePointsInPlace(shuffled, rng)

	circle, err := circleFromSupport(scanSupport(shuffled))
	if err == nil {
		return circle, nil
	}
	if cfg.strict {
		return Circle{}, err
	}

	return diameterFallback(points), nil
}

// diameterFallback builds the diameter circle of the lexicographically
// extreme pair of points. A collinear input — the only way circumcircle
// construction can fail — has its geometric extremes at the lexicographic
// extremes, so the returned circle covers every input point.
func diameterFallback(points []geom2d.Point) Circle {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < lo.X || (p.X == lo.X && p.Y < lo.Y) {
			lo = p
		}
		if p.X > hi.X || (p.X == hi.X && p.Y > hi.Y) {
			hi = p
		}
	}

	center := lo.Midpoint(hi)

	return Circle{Center: center, Radius: lo.Distance(center)}
}
