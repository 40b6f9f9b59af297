package relate

import (
	"math"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
	"github.com/geotopo-go/geotopo/geom/algorithm/intersector"
	"github.com/geotopo-go/geotopo/geom/planar"
)

// Relate computes the DE-9IM intersection matrix of a against b (spec.md
// §4.F). Both geometries are noded against each other (planar.GeometryGraph
// plus intersector.LineIntersector), then every cell is filled from three
// sources of evidence: node coordinates contribute point (dimension 0)
// cells, edge representative points contribute curve (dimension 1) cells,
// and a synthesized interior point per polygon shell contributes area
// (dimension 2) cells. This is a representative-point simplification of
// the full EdgeEndBundle / ON-merge / SIDES-merge construction spec.md
// §4.F step 7 describes; see DESIGN.md for the tradeoff.
//
// Relate returns a *geom.ConstructionError if noding collapses an edge to a
// single point (spec.md §7's construction-error class); such an error
// propagates to the caller of the top-level operation rather than being
// folded into the returned matrix.
func Relate(a, b geom.Geometry) (IntersectionMatrix, error) {
	m := NewIntersectionMatrix()
	m.Set(geom.LocationExterior, geom.LocationExterior, geom.DimArea)
	if a == nil || a.IsEmpty() || b == nil || b.IsEmpty() {
		return m, nil
	}

	pm := a.PrecisionModel().Combine(b.PrecisionModel())
	li := intersector.New(pm)

	ga := planar.NewGeometryGraph(0, a)
	gb := planar.NewGeometryGraph(1, b)
	ga.ComputeSelfNodes(li)
	gb.ComputeSelfNodes(li)
	ga.ComputeEdgeIntersections(gb, li)
	if err := ga.SplitAtIntersections(); err != nil {
		return IntersectionMatrix{}, err
	}
	if err := gb.SplitAtIntersections(); err != nil {
		return IntersectionMatrix{}, err
	}

	nodeCoords := map[geom.XY]struct{}{}
	for i := range ga.Graph.Nodes {
		nodeCoords[normalizeCoord(ga.Graph.Nodes[i].Coordinate)] = struct{}{}
	}
	for i := range gb.Graph.Nodes {
		nodeCoords[normalizeCoord(gb.Graph.Nodes[i].Coordinate)] = struct{}{}
	}
	for xy := range nodeCoords {
		c := geom.NewCoordinate(xy.X, xy.Y)
		locA := algorithm.Locate(c, a)
		locB := algorithm.Locate(c, b)
		m.SetAtLeast(locA, locB, geom.DimPoint)
	}

	// Edges can no longer collapse to a single point here: SplitAtIntersections
	// already rejected any that did, above.
	for i := range ga.Graph.Edges {
		e := &ga.Graph.Edges[i]
		mid := edgeMidpoint(e.Points)
		locA := e.Label.On(0)
		locB := algorithm.Locate(mid, b)
		m.SetAtLeast(locA, locB, geom.DimCurve)
	}
	for i := range gb.Graph.Edges {
		e := &gb.Graph.Edges[i]
		mid := edgeMidpoint(e.Points)
		locB := e.Label.On(1)
		locA := algorithm.Locate(mid, a)
		m.SetAtLeast(locA, locB, geom.DimCurve)
	}

	for _, pt := range polygonInteriorPoints(a) {
		locB := algorithm.Locate(pt, b)
		m.SetAtLeast(geom.LocationInterior, locB, geom.DimArea)
	}
	for _, pt := range polygonInteriorPoints(b) {
		locA := algorithm.Locate(pt, a)
		m.SetAtLeast(locA, geom.LocationInterior, geom.DimArea)
	}

	return m, nil
}

func normalizeCoord(c geom.Coordinate) geom.XY { return c.XY() }

func edgeMidpoint(pts []geom.Coordinate) geom.Coordinate {
	a, b := pts[0], pts[1]
	return geom.NewCoordinate((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// polygonInteriorPoints returns one point known to lie in the interior of
// each polygon shell reachable from g, for use as the area-dimension
// sample point of Relate.
func polygonInteriorPoints(g geom.Geometry) []geom.Coordinate {
	if g == nil || g.IsEmpty() {
		return nil
	}
	switch v := g.(type) {
	case geom.Areal:
		var out []geom.Coordinate
		for i := 0; i < v.NumPolygons(); i++ {
			shell := v.ShellN(i)
			if shell == nil || shell.IsEmpty() {
				continue
			}
			holes := make([]*geom.LinearRing, v.NumHolesN(i))
			for j := range holes {
				holes[j] = v.HoleN(i, j)
			}
			if pt, ok := interiorPointOfRing(shell, holes); ok {
				out = append(out, pt)
			}
		}
		return out
	case geom.Collection:
		var out []geom.Coordinate
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, polygonInteriorPoints(v.GeometryN(i))...)
		}
		return out
	default:
		return nil
	}
}

// interiorPointOfRing searches shell's boundary segments for one whose
// inward-normal offset lands inside the shell and outside every hole,
// shrinking the offset and advancing to the next segment until one
// succeeds.
func interiorPointOfRing(shell *geom.LinearRing, holes []*geom.LinearRing) (geom.Coordinate, bool) {
	pts := shell.Coordinates()
	if len(pts) < 2 {
		return geom.Coordinate{}, false
	}
	ccw := algorithm.IsCCW(pts)
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
		nx, ny := -dy/length, dx/length
		if !ccw {
			nx, ny = -nx, -ny
		}
		for _, scale := range []float64{length * 0.01, length * 0.001, length * 0.0001} {
			cand := geom.NewCoordinate(mx+nx*scale, my+ny*scale)
			if !algorithm.PointInRing(cand, pts) {
				continue
			}
			inHole := false
			for _, h := range holes {
				if h == nil || h.IsEmpty() {
					continue
				}
				if algorithm.PointInRing(cand, h.Coordinates()) {
					inHole = true
					break
				}
			}
			if !inHole {
				return cand, true
			}
		}
	}
	return geom.Coordinate{}, false
}

// Intersects reports whether a and b share any point at all.
func Intersects(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsIntersects(), err
}

// Disjoint reports whether a and b share no point.
func Disjoint(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsDisjoint(), err
}

// Touches reports whether a and b touch without sharing any interior point.
func Touches(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsTouches(a.Dimension(), b.Dimension()), err
}

// Crosses reports whether a and b cross.
func Crosses(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsCrosses(a.Dimension(), b.Dimension()), err
}

// Within reports whether a lies entirely within b.
func Within(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsWithin(), err
}

// Contains reports whether a entirely contains b.
func Contains(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsContains(), err
}

// Overlaps reports whether a and b overlap.
func Overlaps(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsOverlaps(a.Dimension(), b.Dimension()), err
}

// Equals reports whether a and b occupy exactly the same point set.
func Equals(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsEquals(a.Dimension(), b.Dimension()), err
}

// Covers reports whether a covers b.
func Covers(a, b geom.Geometry) (bool, error) {
	m, err := Relate(a, b)
	return m.IsCovers(), err
}

// CoveredBy reports whether a is covered by b.
func CoveredBy(a, b geom.Geometry) (bool, error) { return Covers(b, a) }

// EqualsExact reports whether a and b have the same structure and
// coordinates within tolerance, component for component and vertex for
// vertex -- a stricter, non-topological test than Equals (SPEC_FULL.md
// supplemented feature).
func EqualsExact(a, b geom.Geometry, tolerance float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *geom.Point:
		bv := b.(*geom.Point)
		if av.IsEmpty() != bv.IsEmpty() {
			return false
		}
		if av.IsEmpty() {
			return true
		}
		return coordsEqual(av.Coordinate(), bv.Coordinate(), tolerance)
	case *geom.LineString:
		bv := b.(*geom.LineString)
		return coordSeqEqual(av.Coordinates(), bv.Coordinates(), tolerance)
	case *geom.LinearRing:
		bv := b.(*geom.LinearRing)
		return coordSeqEqual(av.Coordinates(), bv.Coordinates(), tolerance)
	case *geom.Polygon:
		bv := b.(*geom.Polygon)
		if av.NumHoles() != bv.NumHoles() {
			return false
		}
		if !EqualsExact(av.Shell(), bv.Shell(), tolerance) {
			return false
		}
		for i := 0; i < av.NumHoles(); i++ {
			if !EqualsExact(av.Hole(i), bv.Hole(i), tolerance) {
				return false
			}
		}
		return true
	case geom.Collection:
		bv := b.(geom.Collection)
		if av.NumGeometries() != bv.NumGeometries() {
			return false
		}
		for i := 0; i < av.NumGeometries(); i++ {
			if !EqualsExact(av.GeometryN(i), bv.GeometryN(i), tolerance) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func coordsEqual(a, b geom.Coordinate, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func coordSeqEqual(a, b []geom.Coordinate, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !coordsEqual(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
