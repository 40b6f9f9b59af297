// Package intersector computes robust segment-segment intersections
// (spec.md §4.B). Its state-machine shape — classify first, then read off
// zero, one, or two intersection coordinates — is grounded on the
// teacher's CrossingSign/EdgeIntersection pair in
// s2/edge_crossings.go, reworked from great-circle crossings (where two
// segments either miss, cross at one point, or lie on coincident great
// circles that meet at two antipodal points) to straight-line segments,
// which additionally admit a genuine positive-length collinear overlap —
// a case with no analogue on the sphere, so that branch is a planar
// addition grounded in the shape of the teacher's API, not its body.
package intersector

import (
	"math"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
)

// Result classifies how two segments relate.
type Result int

const (
	NoIntersection Result = iota
	PointIntersection
	CollinearIntersection
)

// LineIntersector computes the intersection of two line segments. A
// LineIntersector instance holds only scratch output fields and must not
// be shared between goroutines (spec.md §5's "the line intersector is
// pure" / scratch-buffer note) — callers should construct a fresh value
// (or call Reset) per computation if they want to reuse one across calls
// from a single goroutine.
type LineIntersector struct {
	pm geom.PrecisionModel

	result         Result
	points         [2]geom.Coordinate
	numIntersections int
	isProper       bool
}

// New returns a LineIntersector that snaps intersection coordinates to pm.
func New(pm geom.PrecisionModel) *LineIntersector {
	return &LineIntersector{pm: pm}
}

// Reset clears the result of the previous ComputeIntersection call so the
// instance can be reused.
func (li *LineIntersector) Reset() {
	li.result = NoIntersection
	li.numIntersections = 0
	li.isProper = false
}

// Result returns the classification computed by the last
// ComputeIntersection call.
func (li *LineIntersector) Result() Result { return li.result }

// NumIntersections returns how many intersection coordinates were
// computed (0, 1, or 2).
func (li *LineIntersector) NumIntersections() int { return li.numIntersections }

// IntersectionN returns the i-th computed intersection coordinate.
func (li *LineIntersector) IntersectionN(i int) geom.Coordinate { return li.points[i] }

// IsProper reports whether the computed intersection is proper: a single
// point strictly interior to both segments (not equal to any endpoint of
// either). Only meaningful when Result() == PointIntersection.
func (li *LineIntersector) IsProper() bool { return li.isProper }

// ComputeIntersection computes the intersection of segment (p1,p2) with
// segment (q1,q2) and records the result, retrievable via Result,
// NumIntersections, IntersectionN, and IsProper.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 geom.Coordinate) {
	li.Reset()

	if !envelopesOverlap(p1, p2, q1, q2) {
		li.result = NoIntersection
		return
	}

	pq1 := algorithm.OrientationIndex(p1, p2, q1)
	pq2 := algorithm.OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		li.result = NoIntersection
		return
	}

	qp1 := algorithm.OrientationIndex(q1, q2, p1)
	qp2 := algorithm.OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		li.result = NoIntersection
		return
	}

	collinear := pq1 == algorithm.Collinear && pq2 == algorithm.Collinear
	if collinear {
		li.computeCollinearIntersection(p1, p2, q1, q2)
		return
	}

	// Exactly one proper or vertex intersection point.
	li.isProper = pq1 != algorithm.Collinear && pq2 != algorithm.Collinear &&
		qp1 != algorithm.Collinear && qp2 != algorithm.Collinear

	pt := li.intersectionPoint(p1, p2, q1, q2, pq1, pq2)
	li.result = PointIntersection
	li.numIntersections = 1
	li.points[0] = li.pm.MakePreciseCoordinate(pt)

	// If a shared endpoint exists, it must be returned exactly (never
	// perturbed), per spec.md §4.B.
	if shared, ok := sharedEndpoint(p1, p2, q1, q2); ok {
		li.points[0] = shared
		li.isProper = false
	}
}

// envelopesOverlap is the broad-phase check: if the two segments'
// bounding boxes don't overlap, no narrow-phase work is needed.
func envelopesOverlap(p1, p2, q1, q2 geom.Coordinate) bool {
	e1 := geom.EnvelopeFromCoordinates([]geom.Coordinate{p1, p2})
	e2 := geom.EnvelopeFromCoordinates([]geom.Coordinate{q1, q2})
	return e1.Intersects(e2)
}

// sharedEndpoint returns the coordinate if p1, p2 share an exact (x,y)
// with q1 or q2.
func sharedEndpoint(p1, p2, q1, q2 geom.Coordinate) (geom.Coordinate, bool) {
	switch {
	case p1.Equals2D(q1), p1.Equals2D(q2):
		return p1, true
	case p2.Equals2D(q1), p2.Equals2D(q2):
		return p2, true
	}
	return geom.Coordinate{}, false
}

// intersectionPoint solves the 2x2 linear system for the intersection of
// the two lines through (p1,p2) and (q1,q2), then clamps the result to
// lie within the envelope of both segments so that floating-point drift
// in the division never places the answer outside the inputs (spec.md
// §4.B's "never outside due to floating-point drift" guarantee).
func (li *LineIntersector) intersectionPoint(p1, p2, q1, q2 geom.Coordinate, pq1, pq2 algorithm.Orientation) geom.Coordinate {
	// If one endpoint of PQ lies exactly on line p1p2 (collinear orientation),
	// that endpoint is itself the intersection point: the most numerically
	// reliable answer available.
	if pq1 == algorithm.Collinear {
		return clampToEnvelopes(q1, p1, p2, q1, q2)
	}
	if pq2 == algorithm.Collinear {
		return clampToEnvelopes(q2, p1, p2, q1, q2)
	}

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := q1.X, q1.Y
	x4, y4 := q2.X, q2.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		// Parallel within floating point: fall back to the nearest
		// acceptable endpoint rather than dividing by zero.
		return nearestEndpoint(p1, p2, q1, q2)
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom

	pt := geom.NewCoordinate(px, py)
	return clampToEnvelopes(pt, p1, p2, q1, q2)
}

// clampToEnvelopes returns the point nearest pt that lies within the
// intersection of the envelopes of (p1,p2) and (q1,q2).
func clampToEnvelopes(pt, p1, p2, q1, q2 geom.Coordinate) geom.Coordinate {
	e1 := geom.EnvelopeFromCoordinates([]geom.Coordinate{p1, p2})
	e2 := geom.EnvelopeFromCoordinates([]geom.Coordinate{q1, q2})
	minX := math.Max(e1.MinX, e2.MinX)
	maxX := math.Min(e1.MaxX, e2.MaxX)
	minY := math.Max(e1.MinY, e2.MinY)
	maxY := math.Min(e1.MaxY, e2.MaxY)
	x := math.Min(math.Max(pt.X, minX), maxX)
	y := math.Min(math.Max(pt.Y, minY), maxY)
	return geom.NewCoordinate(x, y)
}

// nearestEndpoint returns whichever of the four segment endpoints lies
// closest to being a mutual intersection, used only as a last-resort
// fallback when the line-line solve is degenerate.
func nearestEndpoint(p1, p2, q1, q2 geom.Coordinate) geom.Coordinate {
	candidates := []geom.Coordinate{p1, p2, q1, q2}
	best := candidates[0]
	bestScore := math.Inf(1)
	for _, c := range candidates {
		score := c.DistanceSquared(p1) + c.DistanceSquared(p2) + c.DistanceSquared(q1) + c.DistanceSquared(q2)
		if score < bestScore {
			bestScore, best = score, c
		}
	}
	return best
}

// computeCollinearIntersection handles the case where both segments lie
// on the same line. It determines the overlap (if any) of the two
// segments' 1-D parameter ranges along that line.
func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 geom.Coordinate) {
	pEnv := geom.EnvelopeFromCoordinates([]geom.Coordinate{p1, p2})
	qEnv := geom.EnvelopeFromCoordinates([]geom.Coordinate{q1, q2})
	if !pEnv.Intersects(qEnv) {
		li.result = NoIntersection
		return
	}

	// Project onto whichever axis has more spread, to avoid dividing by
	// a near-zero span on the other axis.
	useX := pEnv.Width() >= pEnv.Height()

	param := func(c geom.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}
	pts := []paramPoint{{param(p1), p1}, {param(p2), p2}, {param(q1), q1}, {param(q2), q2}}

	pLo, pHi := math.Min(pts[0].t, pts[1].t), math.Max(pts[0].t, pts[1].t)
	qLo, qHi := math.Min(pts[2].t, pts[3].t), math.Max(pts[2].t, pts[3].t)
	lo := math.Max(pLo, qLo)
	hi := math.Min(pHi, qHi)
	if lo > hi {
		li.result = NoIntersection
		return
	}

	loCoord := selectEndpointAt(lo, pts)
	hiCoord := selectEndpointAt(hi, pts)

	if lo == hi {
		li.result = PointIntersection
		li.numIntersections = 1
		li.points[0] = li.pm.MakePreciseCoordinate(loCoord)
		li.isProper = false
		return
	}

	li.result = CollinearIntersection
	li.numIntersections = 2
	li.points[0] = li.pm.MakePreciseCoordinate(loCoord)
	li.points[1] = li.pm.MakePreciseCoordinate(hiCoord)
}

// paramPoint is a segment endpoint tagged with its 1-D parameter along
// the shared line of a collinear intersection.
type paramPoint struct {
	t float64
	c geom.Coordinate
}

// selectEndpointAt returns whichever input coordinate has parameter t,
// preferring an exact input endpoint over a derived one so shared
// endpoints are returned unperturbed.
func selectEndpointAt(t float64, pts []paramPoint) geom.Coordinate {
	for _, p := range pts {
		if p.t == t {
			return p.c
		}
	}
	return pts[0].c
}
