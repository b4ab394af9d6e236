// Package mec - RNG utilities for the permutation step.
//
// This file centralizes deterministic random generation for the driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutation ⇒ identical scan path.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: each Solve call owns its generator; nothing process-wide.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Solve never shares one: it either
//     builds a fresh generator from the seed or uses the caller's via WithRand,
//     and concurrent callers are documented to pass distinct generators.
package mec

import (
	"math/rand"

	"github.com/Nicolaus93/smallest-enclosing-circle/geom2d"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shufflePointsInPlace performs an in-place Fisher–Yates shuffle of pts using
// rng. If rng==nil, the deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shufflePointsInPlace(pts []geom2d.Point, rng *rand.Rand) {
	n := len(pts)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
