package planar

import (
	"sort"

	"github.com/geotopo-go/geotopo/geom"
)

// EdgeIntersection is a point on an Edge's coordinate sequence, located
// by the segment it falls on and its distance along that segment
// (spec.md §3).
type EdgeIntersection struct {
	Coordinate   geom.Coordinate
	SegmentIndex int
	Dist         float64
}

// less orders intersections by (segmentIndex, dist), the ordering
// spec.md §5 requires for this list.
func (a EdgeIntersection) less(b EdgeIntersection) bool {
	if a.SegmentIndex != b.SegmentIndex {
		return a.SegmentIndex < b.SegmentIndex
	}
	return a.Dist < b.Dist
}

func (a EdgeIntersection) equalKey(b EdgeIntersection) bool {
	return a.SegmentIndex == b.SegmentIndex && a.Dist == b.Dist
}

// EdgeIntersectionList holds an Edge's intersections, sorted by
// (segmentIndex, dist) and de-duplicated (spec.md §3).
type EdgeIntersectionList struct {
	items []EdgeIntersection
}

// Add inserts an intersection at the given segment/distance, keeping coord
// as given, unless an equal one is already present.
func (l *EdgeIntersectionList) Add(coord geom.Coordinate, segmentIndex int, dist float64) {
	ei := EdgeIntersection{Coordinate: coord, SegmentIndex: segmentIndex, Dist: dist}
	i := sort.Search(len(l.items), func(i int) bool { return !l.items[i].less(ei) })
	if i < len(l.items) && l.items[i].equalKey(ei) {
		return
	}
	l.items = append(l.items, EdgeIntersection{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = ei
}

// Items returns the sorted, de-duplicated intersection list.
func (l *EdgeIntersectionList) Items() []EdgeIntersection { return l.items }

// IsEmpty reports whether the list has no intersections.
func (l *EdgeIntersectionList) IsEmpty() bool { return len(l.items) == 0 }

// SplitEdge returns the coordinate sequences of the sub-edges obtained by
// splitting edgePoints at every intersection in the list plus the edge's
// own endpoints, per spec.md §4.E step 4 ("split each edge at its
// intersections into a chain of sub-edges", performed lazily on demand).
func (l *EdgeIntersectionList) SplitEdge(edgePoints []geom.Coordinate) [][]geom.Coordinate {
	n := len(edgePoints)
	if n == 0 {
		return nil
	}
	// Build the ordered list of split coordinates: the edge's start,
	// every recorded intersection (already sorted), and the edge's end.
	splitAt := make([]EdgeIntersection, 0, len(l.items)+2)
	splitAt = append(splitAt, EdgeIntersection{Coordinate: edgePoints[0], SegmentIndex: 0, Dist: 0})
	splitAt = append(splitAt, l.items...)
	lastSeg := n - 2
	if lastSeg < 0 {
		lastSeg = 0
	}
	splitAt = append(splitAt, EdgeIntersection{Coordinate: edgePoints[n-1], SegmentIndex: lastSeg, Dist: 1})

	var out [][]geom.Coordinate
	for i := 0; i < len(splitAt)-1; i++ {
		a, b := splitAt[i], splitAt[i+1]
		seg := []geom.Coordinate{a.Coordinate}
		for seg2 := a.SegmentIndex + 1; seg2 <= b.SegmentIndex; seg2++ {
			seg = append(seg, edgePoints[seg2])
		}
		if !seg[len(seg)-1].Equals2D(b.Coordinate) {
			seg = append(seg, b.Coordinate)
		}
		if (&Edge{Points: seg}).IsCollapsed() {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// Edge is an ordered coordinate sequence of length >= 2, carrying a
// Label and an EdgeIntersectionList (spec.md §3).
type Edge struct {
	Points        []geom.Coordinate
	Label         Label
	Intersections EdgeIntersectionList
	isIsolated    bool
}

// Envelope returns the bounding box of the edge's coordinates.
func (e *Edge) Envelope() geom.Envelope { return geom.EnvelopeFromCoordinates(e.Points) }

// NumPoints returns the length of the edge's coordinate sequence.
func (e *Edge) NumPoints() int { return len(e.Points) }

// AddIntersection records an intersection at segmentIndex along the
// segment (Points[segmentIndex], Points[segmentIndex+1]), at fractional
// distance dist in [0,1], normalizing a dist of exactly 1 to the start
// of the next segment so that segmentIndex/dist pairs compare equal when
// they denote the same point from adjacent segments.
func (e *Edge) AddIntersection(coord geom.Coordinate, segmentIndex int, dist float64) {
	normSeg, normDist := segmentIndex, dist
	if normDist >= 1 && normSeg < len(e.Points)-2 {
		normSeg++
		normDist = 0
	}
	e.Intersections.Add(coord, normSeg, normDist)
}

// IsCollapsed reports whether all points in the edge are identical
// (a zero-length edge), the fatal construction error condition of
// spec.md §4.E ("a zero-length edge is a fatal construction error").
func (e *Edge) IsCollapsed() bool {
	for _, p := range e.Points[1:] {
		if !p.Equals2D(e.Points[0]) {
			return false
		}
	}
	return true
}
