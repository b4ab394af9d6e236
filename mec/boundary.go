package mec

import "github.com/Nicolaus93/smallest-enclosing-circle/geom2d"

// supportCap is the maximum number of points on the boundary of a minimum
// enclosing circle in the plane.
const supportCap = 3

// supportSet holds at most supportCap indices into the scanned point slice,
// in insertion order. The inline array keeps the hot loop allocation-free.
type supportSet struct {
	idx [supportCap]int
	n   int
}

// has reports whether index i is currently part of the support.
func (s *supportSet) has(i int) bool {
	for k := 0; k < s.n; k++ {
		if s.idx[k] == i {
			return true
		}
	}

	return false
}

// retainAfter drops every support index not greater than i, preserving the
// relative order of the survivors.
func (s *supportSet) retainAfter(i int) {
	w := 0
	for k := 0; k < s.n; k++ {
		if s.idx[k] > i {
			s.idx[w] = s.idx[k]
			w++
		}
	}
	s.n = w
}

// push appends index i. The scan only pushes after retainAfter, which frees
// at least the slot i itself occupied, so overflow is unreachable; it still
// panics to make an invariant breach loud rather than silent.
func (s *supportSet) push(i int) {
	if s.n == supportCap {
		panic("mec: support set overflow")
	}
	s.idx[s.n] = i
	s.n++
}

// gather copies the referenced points into buf and returns the filled prefix.
func (s *supportSet) gather(points []geom2d.Point, buf *[supportCap]geom2d.Point) []geom2d.Point {
	for k := 0; k < s.n; k++ {
		buf[k] = points[s.idx[k]]
	}

	return buf[:s.n]
}

// scanSupport runs the iterative move-to-front scan over points (assumed
// pre-shuffled) and returns the support points of the minimum enclosing
// circle, at most supportCap of them, in discovery order.
//
// Loop invariant: the circle implied by the current support encloses every
// point the cursor has passed. A violator evicts the support indices not
// greater than the cursor and joins the support; while the support holds
// fewer than supportCap points the scan restarts from the front, because a
// circle through fewer than three support points is provisional and earlier
// containment verdicts no longer hold.
//
// Termination: the cursor strictly increases except on shrink events, and
// under a random order each point triggers a bounded expected number of
// shrinks, giving Welzl's expected O(n) bound (worst case O(n²)).
func scanSupport(points []geom2d.Point) []geom2d.Point {
	n := len(points)
	if n == 0 {
		return nil
	}

	var (
		sup supportSet
		buf [supportCap]geom2d.Point
	)

	i := 0
	for i < n {
		// Support points are already accounted for.
		if sup.has(i) {
			i++
			continue
		}

		if pointInBoundary(points[i], sup.gather(points, &buf)) {
			i++
			continue
		}

		// points[i] violates the current circle: it belongs on the boundary.
		sup.retainAfter(i)
		sup.push(i)
		if sup.n < supportCap {
			i = 0
		} else {
			i++
		}
	}

	out := make([]geom2d.Point, sup.n)
	for k := 0; k < sup.n; k++ {
		out[k] = points[sup.idx[k]]
	}

	return out
}
