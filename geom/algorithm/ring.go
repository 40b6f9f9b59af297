package algorithm

import (
	"math"

	"github.com/geotopo-go/geotopo/geom"
)

// PointInRing reports whether p lies inside (or on) ring, using a
// ray-casting crossing count from p along the positive-x axis. Points
// exactly on the ring are treated as inside, matching OGC boundary-
// inclusive semantics (spec.md §4.A.2). ring's first and last coordinates
// are assumed equal (as for any LinearRing); fewer than 4 points is not a
// valid input.
func PointInRing(p geom.Coordinate, ring []geom.Coordinate) bool {
	if onRingBoundary(p, ring) {
		return true
	}
	crossings := 0
	n := len(ring)
	for i := 0; i < n-1; i++ {
		a, b := ring[i], ring[i+1]
		if rayCrossesSegment(p, a, b) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// onRingBoundary reports whether p lies exactly on one of ring's segments.
func onRingBoundary(p geom.Coordinate, ring []geom.Coordinate) bool {
	n := len(ring)
	for i := 0; i < n-1; i++ {
		if pointOnSegment(p, ring[i], ring[i+1]) {
			return true
		}
	}
	return false
}

// pointOnSegment reports whether p lies on the closed segment [a,b].
func pointOnSegment(p, a, b geom.Coordinate) bool {
	if OrientationIndex(a, b, p) != Collinear {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// rayCrossesSegment reports whether the ray from p in the +x direction
// crosses segment (a,b), using the standard half-open-interval rule so
// that a ray passing exactly through a shared vertex of two consecutive
// segments is counted once, not zero or two times.
func rayCrossesSegment(p, a, b geom.Coordinate) bool {
	if (a.Y > p.Y) == (b.Y > p.Y) {
		// Both endpoints on the same side of the horizontal line through
		// p (or both exactly on it): the segment cannot cross the ray an
		// odd number of times via the half-open rule.
		return false
	}
	// x-coordinate where the segment crosses the horizontal line y = p.Y.
	xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return p.X < xCross
}

// SignedArea returns the signed area of the polygon described by ring
// (first == last coordinate), positive for counter-clockwise rings,
// using the shoelace formula.
func SignedArea(ring []geom.Coordinate) float64 {
	n := len(ring)
	if n < 4 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return sum / 2
}

// IsCCW reports whether ring is oriented counter-clockwise (positive
// signed area). Rings of fewer than 4 coordinates are not a valid input
// (spec.md §4.A.3) and IsCCW panics rather than silently returning a
// meaningless answer.
func IsCCW(ring []geom.Coordinate) bool {
	if len(ring) < 4 {
		panic("algorithm: IsCCW requires a ring of at least 4 coordinates")
	}
	return SignedArea(ring) > 0
}
