package geom2d

import "math"

// Point is an immutable 2-D point with float64 coordinates.
// Points are plain values: copy them freely and compare them only through
// derived quantities (distance, orientation), never by identity.
type Point struct {
	X, Y float64
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// Prefer it over Distance whenever only comparisons are needed: it skips
// the square root and loses no ordering information.
//
// Complexity: O(1).
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// Midpoint returns the point halfway between p and q.
//
// Complexity: O(1).
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
	}
}
