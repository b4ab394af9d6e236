package mec

import "github.com/Nicolaus93/smallest-enclosing-circle/geom2d"

// FromRows converts an N×2 row table into a point slice. Every row must hold
// exactly two columns (x, y); any other width returns ErrBadShape before the
// core ever sees the data.
//
// Complexity: O(n) time and memory.
func FromRows(rows [][]float64) ([]geom2d.Point, error) {
	pts := make([]geom2d.Point, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, ErrBadShape
		}
		pts[i] = geom2d.Point{X: row[0], Y: row[1]}
	}

	return pts, nil
}

// SolveRows is the row-table round-trip: validate the N×2 shape, solve, and
// hand the result back as (center, radius) in the caller's numeric terms.
// Options pass through to Solve unchanged.
//
// Errors: ErrBadShape for malformed rows; ErrCollinearSupport only under
// WithStrictDegenerate (see Solve).
func SolveRows(rows [][]float64, opts ...Option) (center [2]float64, radius float64, err error) {
	pts, err := FromRows(rows)
	if err != nil {
		return [2]float64{}, 0, err
	}

	circle, err := Solve(pts, opts...)
	if err != nil {
		return [2]float64{}, 0, err
	}

	return [2]float64{circle.Center.X, circle.Center.Y}, circle.Radius, nil
}
