package mec

import (
	"math"

	"github.com/Nicolaus93/smallest-enclosing-circle/geom2d"
)

// pointInBoundary reports whether p lies inside or on the circle implied by
// 0–3 boundary points:
//
//   - 0 or 1 points: always false — a lone boundary point never already
//     encloses a newcomer, which forces p onto the boundary.
//   - 2 points: the circle whose diameter is the segment between them,
//     tested on squared distances with the geom2d.Eps band.
//   - 3 points: the in-circle predicate, with the triple normalized to CCW
//     winding (first and third swapped when clockwise). A collinear triple
//     has no valid circle and unconditionally reports false; the degenerate
//     support then surfaces at construction time, not here.
//
// Boundary lengths above 3 are an invariant violation and panic.
func pointInBoundary(p geom2d.Point, boundary []geom2d.Point) bool {
	switch len(boundary) {
	case 0, 1:
		return false

	case 2:
		a, b := boundary[0], boundary[1]
		center := a.Midpoint(b)
		radiusSq := a.DistanceSquared(b) * 0.25

		return p.DistanceSquared(center) <= radiusSq+geom2d.Eps

	case 3:
		a, b, c := boundary[0], boundary[1], boundary[2]
		switch geom2d.Orient(a, b, c) {
		case geom2d.Collinear:
			return false
		case geom2d.CounterClockwise:
			return geom2d.InCircle(a, b, c, p)
		default:
			return geom2d.InCircle(c, b, a, p)
		}

	default:
		panic("mec: boundary holds more than three points")
	}
}

// Circumcircle returns the unique circle passing through three non-collinear
// points, via the closed-form circumcenter (the intersection of two
// perpendicular bisectors). The denominator is twice the triangle's signed
// area; it is checked against geom2d.Eps BEFORE the division, and a
// vanishing denominator returns ErrCollinearSupport.
//
// Complexity: O(1).
func Circumcircle(a, b, c geom2d.Point) (Circle, error) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < geom2d.Eps {
		return Circle{}, ErrCollinearSupport
	}

	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y

	center := geom2d.Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}

	return Circle{Center: center, Radius: center.Distance(a)}, nil
}

// circleFromSupport materializes the circle defined by a support set of 0–3
// points:
//
//   - 0 points: zero circle at the origin (empty input only).
//   - 1 point: that point, radius 0.
//   - 2 points: midpoint center, half-distance radius.
//   - 3 points: Circumcircle, which may fail with ErrCollinearSupport.
//
// Support lengths above 3 are an invariant violation and panic.
func circleFromSupport(support []geom2d.Point) (Circle, error) {
	switch len(support) {
	case 0:
		return Circle{}, nil

	case 1:
		return Circle{Center: support[0]}, nil

	case 2:
		center := support[0].Midpoint(support[1])

		return Circle{Center: center, Radius: support[0].Distance(center)}, nil

	case 3:
		return Circumcircle(support[0], support[1], support[2])

	default:
		panic("mec: support holds more than three points")
	}
}
