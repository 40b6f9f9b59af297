package valid

import "github.com/geotopo-go/geotopo/geom"

// checkDuplicateRings implements spec.md §4.G step 8: no two rings of g
// may trace the same sequence of coordinates, up to choice of start
// point.
func checkDuplicateRings(g geom.Geometry) *ValidityError {
	rings := collectRingCoordinates(g)
	for i := 0; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			if ringsEqualUpToRotation(rings[i], rings[j]) {
				loc := geom.Coordinate{}
				if len(rings[j]) > 0 {
					loc = rings[j][0]
				}
				return newValidityError(DuplicateRings, loc, "two rings trace the same sequence of coordinates")
			}
		}
	}
	return nil
}

func collectRingCoordinates(g geom.Geometry) [][]geom.Coordinate {
	if g == nil || g.IsEmpty() {
		return nil
	}
	switch v := g.(type) {
	case *geom.LinearRing:
		return [][]geom.Coordinate{v.Coordinates()}
	case *geom.Polygon:
		out := [][]geom.Coordinate{v.Shell().Coordinates()}
		for i := 0; i < v.NumHoles(); i++ {
			out = append(out, v.Hole(i).Coordinates())
		}
		return out
	case *geom.MultiPolygon:
		var out [][]geom.Coordinate
		for i := 0; i < v.NumPolygons(); i++ {
			out = append(out, v.ShellN(i).Coordinates())
			for j := 0; j < v.NumHolesN(i); j++ {
				out = append(out, v.HoleN(i, j).Coordinates())
			}
		}
		return out
	case geom.Collection:
		var out [][]geom.Coordinate
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, collectRingCoordinates(v.GeometryN(i))...)
		}
		return out
	default:
		return nil
	}
}

// ringsEqualUpToRotation reports whether a and b are the same closed ring
// up to choice of start point (same winding direction; spec.md §4.G step
// 8 does not ask for reversed-winding matches to also count).
func ringsEqualUpToRotation(a, b []geom.Coordinate) bool {
	if len(a) != len(b) || len(a) < 4 {
		return false
	}
	n := len(a) - 1 // open-cycle length, ignoring the repeated closing point
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if !a[i].Equals2D(b[(i+offset)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
