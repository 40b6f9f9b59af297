package algorithm

import "github.com/geotopo-go/geotopo/geom"

// Locate returns p's topological location relative to g: Boundary if p
// lies exactly on g's boundary, Interior if it lies in g's interior, and
// Exterior otherwise (including when g is empty). This is the point-
// locator spec.md §4.F step 6 calls for ("point-in-ring for areas,
// point-on-line for lines"), generalized over every Geometry variant by
// recursing through Collection components.
func Locate(p geom.Coordinate, g geom.Geometry) geom.Location {
	if g == nil || g.IsEmpty() {
		return geom.LocationExterior
	}
	switch v := g.(type) {
	case *geom.Point:
		if p.Equals2D(v.Coordinate()) {
			return geom.LocationInterior
		}
		return geom.LocationExterior
	case geom.Collection:
		return locateInCollection(p, v)
	case geom.Areal:
		return locateInAreal(p, v)
	case geom.Lineal:
		return locateInLineal(p, v)
	default:
		return geom.LocationExterior
	}
}

// locateInCollection locates p against every component of c and combines
// the results: Interior if any component claims it as Interior,
// otherwise Boundary if any claims it as Boundary, otherwise Exterior.
// This also dispatches MultiPoint/MultiLineString/MultiPolygon (which
// satisfy both Collection and Lineal/Areal) through their components,
// since Collection is checked first in Locate's type switch.
func locateInCollection(p geom.Coordinate, c geom.Collection) geom.Location {
	best := geom.LocationExterior
	for i := 0; i < c.NumGeometries(); i++ {
		switch Locate(p, c.GeometryN(i)) {
		case geom.LocationInterior:
			return geom.LocationInterior
		case geom.LocationBoundary:
			best = geom.LocationBoundary
		}
	}
	return best
}

// locateInAreal implements point-in-ring location for a Polygon or (via
// locateInCollection) each component of a MultiPolygon: on a shell or
// hole boundary is Boundary; inside the shell and outside every hole is
// Interior; inside a hole, or outside the shell entirely, is Exterior.
func locateInAreal(p geom.Coordinate, v geom.Areal) geom.Location {
	best := geom.LocationExterior
	for i := 0; i < v.NumPolygons(); i++ {
		shell := v.ShellN(i)
		if shell == nil || shell.IsEmpty() {
			continue
		}
		shellPts := shell.Coordinates()
		if onRingBoundary(p, shellPts) {
			return geom.LocationBoundary
		}
		if !PointInRing(p, shellPts) {
			continue
		}
		inHole := false
		for j := 0; j < v.NumHolesN(i); j++ {
			holePts := v.HoleN(i, j).Coordinates()
			if onRingBoundary(p, holePts) {
				return geom.LocationBoundary
			}
			if PointInRing(p, holePts) {
				inHole = true
				break
			}
		}
		if !inHole {
			return geom.LocationInterior
		}
	}
	return best
}

// locateInLineal implements point-on-line location for a LineString or
// LinearRing (or, via locateInCollection, each line of a
// MultiLineString): on an open line's endpoint an odd number of times
// (the Mod-2 rule of spec.md §4.E.3) is Boundary; anywhere else on a
// segment is Interior; off every segment is Exterior.
func locateInLineal(p geom.Coordinate, v geom.Lineal) geom.Location {
	present := false
	endpointCount := map[geom.XY]int{}
	for i := 0; i < v.NumLines(); i++ {
		line := v.LineN(i)
		if len(line) < 2 {
			continue
		}
		for k := 0; k < len(line)-1; k++ {
			if pointOnSegment(p, line[k], line[k+1]) {
				present = true
			}
		}
		if !line[0].Equals2D(line[len(line)-1]) {
			endpointCount[normalize(line[0])]++
			endpointCount[normalize(line[len(line)-1])]++
		}
	}
	if !present {
		return geom.LocationExterior
	}
	if n, ok := endpointCount[normalize(p)]; ok && n%2 == 1 {
		return geom.LocationBoundary
	}
	return geom.LocationInterior
}

func normalize(c geom.Coordinate) geom.XY { return c.XY() }
