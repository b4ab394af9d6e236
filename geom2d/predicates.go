package geom2d

import "math"

// Eps is the fixed tolerance applied by the geometric predicates.
// Signed areas with magnitude below Eps classify as Collinear, and the
// in-circle determinant treats values down to −Eps as "inside", so points
// sitting on a circle's rim never flip between inside and outside under
// floating-point noise.
const Eps = 1e-12

// Orientation enumerates the angular relationship of an ordered point triple.
type Orientation int

const (
	// Clockwise indicates the triple (a, b, c) turns clockwise (negative area).
	Clockwise Orientation = iota - 1
	// Collinear indicates the triple has no turn within the Eps band.
	Collinear
	// CounterClockwise indicates the triple turns counter-clockwise (positive area).
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

// String returns the human-readable name of o.
func (o Orientation) String() string {
	if o < Clockwise || o > CounterClockwise {
		return "Unknown"
	}

	return orientationLabels[o+1]
}

// Orient2D returns twice the signed area of the triangle (a, b, c):
// positive when the triple turns counter-clockwise, negative when it turns
// clockwise, near zero when the points are collinear. This is the classic
// orient2d predicate, the 2×2 determinant of the segments a−c and b−c.
//
// Complexity: O(1).
func Orient2D(a, b, c Point) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
}

// Orient classifies Orient2D(a, b, c) against the Eps tolerance band.
//
// Complexity: O(1).
func Orient(a, b, c Point) Orientation {
	area := Orient2D(a, b, c)
	switch {
	case math.Abs(area) < Eps:
		return Collinear
	case area > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// InCircle reports whether d lies inside or on the circle passing through
// a, b and c. It evaluates the standard translate-to-origin determinant
// expansion (Shewchuk's incircle), so the circumcenter is never computed
// explicitly. The comparison is inclusive: determinants down to −Eps count
// as inside, which keeps rim points stable under rounding.
//
// Contract: a, b, c MUST be supplied in counter-clockwise order. For a
// clockwise triple, call InCircle(c, b, a, d).
//
// Complexity: O(1).
func InCircle(a, b, c, d Point) bool {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	adist := adx*adx + ady*ady
	bdist := bdx*bdx + bdy*bdy
	cdist := cdx*cdx + cdy*cdy

	det := adx*(bdy*cdist-cdy*bdist) -
		ady*(bdx*cdist-cdx*bdist) +
		adist*(bdx*cdy-bdy*cdx)

	return det >= -Eps
}
