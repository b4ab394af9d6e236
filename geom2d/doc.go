// Package geom2d provides the planar primitives the enclosing-circle
// algorithm is built on: points, Euclidean metrics, and the two robust
// predicates (orientation and in-circle) that decide everything.
//
// What:
//
//   - Point — immutable (X, Y) value type with DistanceSquared / Distance /
//     Midpoint.
//   - Orient2D — twice the signed area of a triangle; Orient classifies it
//     into Clockwise / Collinear / CounterClockwise with the Eps band.
//   - InCircle — "does d lie inside or on the circle through a, b, c?",
//     evaluated as a translate-to-origin determinant. No trigonometry, no
//     explicit circumcenter: the determinant form stays well-conditioned
//     where the naive construction loses digits.
//
// Why:
//
//   - Every containment decision in the incremental algorithm reduces to
//     these two predicates; getting their tolerance policy right once, here,
//     keeps the algorithm layer free of ad-hoc epsilons.
//   - Boundary points classify as inside (det ≥ −Eps), so floating-point
//     noise on the circle rim cannot make the algorithm oscillate.
//
// Contracts:
//
//   - InCircle requires a, b, c in counter-clockwise order. Callers holding
//     a clockwise triple swap the first and third arguments; that is the
//     documented normalization, not an internal fixup.
//
// Complexity: every function here is O(1) with no allocations.
package geom2d
