// Package algorithm implements the numeric predicates of spec.md §4.A:
// orientation, point-in-ring, and ring orientation (CCW) tests. These are
// the leaves of the dependency graph — every other package in this module
// (the line intersector, the planar graph builder, the relate and
// validity engines) is built on top of the sign-robustness guarantees made
// here.
//
// The robust-sign cascade below is grounded on the teacher's
// triageSign -> stableSign -> expensiveSign fallback in
// s2/predicates.go, reworked from r3.Vector cross/dot products on the
// sphere to plain 2x2 planar determinants.
package algorithm

import (
	"math"

	"github.com/geotopo-go/geotopo/geom"
)

// Orientation is the sign of a triple of points.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

const (
	// dblEpsilon is the machine epsilon for float64.
	dblEpsilon = 2.220446049250313e-16

	// triageErrorBound bounds the error in the raw 2x2 determinant
	// computed directly from double-precision coordinates. Below this
	// magnitude the sign cannot be trusted and the cascade falls through
	// to the longest-edge-reordered recomputation.
	triageErrorBound = 3.3306690738754716e-16
)

// OrientationIndex returns the sign of the signed area of the triangle
// (p, q, r): CounterClockwise if r is to the left of the directed line
// p->q, Clockwise if to the right, Collinear if (numerically) on it.
//
// The contract is sign-robustness, not a specific algorithm (spec.md
// §4.A.1): OrientationIndex(p,q,r) == -OrientationIndex(q,p,r) always,
// even in near-degenerate cases, because both the cheap and the
// fallback computation are themselves antisymmetric under that swap.
func OrientationIndex(p, q, r geom.Coordinate) Orientation {
	if o := triageOrientation(p, q, r); o != Collinear {
		return o
	}
	return stableOrientation(p, q, r)
}

// triageOrientation computes the determinant directly from the raw
// coordinates and trusts the sign only if it clears a fixed error bound.
// This is the cheap common case; it returns Collinear (meaning
// "indeterminate", not necessarily "exactly collinear") when the
// magnitude is too small to trust.
func triageOrientation(p, q, r geom.Coordinate) Orientation {
	dx1, dy1 := q.X-p.X, q.Y-p.Y
	dx2, dy2 := r.X-p.X, r.Y-p.Y
	det := dx1*dy2 - dy1*dx2

	// Conservative bound on the rounding error of the above expression,
	// scaled by the magnitude of the inputs (the same shape of bound as
	// the teacher's maxDeterminantError, specialized to a 2x2 determinant
	// of two subtractions and a cross product instead of a 3x3 one).
	magnitude := math.Abs(dx1*dy2) + math.Abs(dy1*dx2)
	bound := triageErrorBound * magnitude
	if det > bound {
		return CounterClockwise
	}
	if det < -bound {
		return Clockwise
	}
	return Collinear
}

// stableOrientation recomputes the determinant anchored at the vertex
// opposite the triangle's longest edge, the planar analogue of the
// teacher's stableSign reordering to the longest edge before taking the
// cross product. Signed-area is invariant under choice of anchor vertex
// (it is the same value whichever of p, q, r the two edge vectors are
// taken from), so anchoring at the vertex between the two *shortest*
// edges minimizes the relative rounding error of the cross product and
// resolves almost all of the cases triageOrientation could not.
func stableOrientation(p, q, r geom.Coordinate) Orientation {
	pq2 := p.Sub(q).Dot2D(p.Sub(q))
	qr2 := q.Sub(r).Dot2D(q.Sub(r))
	rp2 := r.Sub(p).Dot2D(r.Sub(p))

	var e1, e2 geom.Coordinate
	switch {
	case pq2 >= qr2 && pq2 >= rp2:
		// pq is the longest edge; anchor at r.
		e1, e2 = p.Sub(r), q.Sub(r)
	case qr2 >= rp2:
		// qr is the longest edge; anchor at p.
		e1, e2 = q.Sub(p), r.Sub(p)
	default:
		// rp is the longest edge; anchor at q.
		e1, e2 = r.Sub(q), p.Sub(q)
	}

	det := e1.Cross2D(e2)
	maxErr := detErrorMultiplier * math.Sqrt(e1.Dot2D(e1)*e2.Dot2D(e2))
	if det > maxErr {
		return CounterClockwise
	}
	if det < -maxErr {
		return Clockwise
	}
	return Collinear
}

// detErrorMultiplier bounds the relative error of the stable
// recomputation, the planar analogue of the teacher's detErrorMultiplier.
const detErrorMultiplier = 8 * dblEpsilon
