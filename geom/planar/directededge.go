package planar

import "github.com/geotopo-go/geotopo/geom"

// Quadrant is the compass quadrant of a direction vector, used to order
// directed edges around a node without the cost (and rounding risk) of
// an atan2 call (spec.md §4.E.3's "ordered by angle" requirement).
type Quadrant int

const (
	QuadrantNE Quadrant = iota
	QuadrantNW
	QuadrantSW
	QuadrantSE
)

// quadrantOf classifies the direction vector (dx, dy). The zero vector
// is never passed in: a directed edge's direction point is always
// distinct from its origin (zero-length edges are rejected at
// construction, spec.md §4.E).
func quadrantOf(dx, dy float64) Quadrant {
	switch {
	case dx >= 0 && dy >= 0:
		return QuadrantNE
	case dx < 0 && dy >= 0:
		return QuadrantNW
	case dx < 0 && dy < 0:
		return QuadrantSW
	default:
		return QuadrantSE
	}
}

// DirectedEdge is one of the two directions of travel along an Edge,
// from From to To. The two directions of the same Edge are each
// other's Sym. Next is NoDirEdge as AddEdge creates it; the overlay
// ring-reconstruction walk does not set it and follows Graph.NextOut
// instead.
type DirectedEdge struct {
	Edge    EdgeID
	Forward bool
	From, To NodeID

	// directionPt is the edge's second coordinate in this direction of
	// travel (Points[1] forward, Points[len-2] reverse), used to order the
	// edge within its origin node's star.
	directionPt geom.Coordinate
	Quadrant    Quadrant

	Sym  DirEdgeID
	Next DirEdgeID

	Label Label

	InResult bool
	Visited  bool
}

// DirectionPoint returns the point used to compute this directed edge's
// angle from its origin node: the edge's second coordinate in the
// direction of travel.
func (d *DirectedEdge) DirectionPoint() geom.Coordinate { return d.directionPt }

// compareDirection orders two directed edges sharing an origin node by
// angle, counterclockwise starting from due east: first by quadrant,
// then — within a quadrant — by the orientation of the triangle
// (origin, a's direction point, b's direction point), which is exact
// wherever OrientationIndex is exact and needs no trigonometry.
func compareDirection(origin geom.Coordinate, aDir geom.Coordinate, aQuad Quadrant, bDir geom.Coordinate, bQuad Quadrant, orient func(p, q, r geom.Coordinate) int) int {
	if aQuad != bQuad {
		if aQuad < bQuad {
			return -1
		}
		return 1
	}
	if aDir.Equals2D(bDir) {
		return 0
	}
	return -orient(origin, aDir, bDir)
}
