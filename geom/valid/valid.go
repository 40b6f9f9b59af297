package valid

import (
	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
)

// holeIndexThreshold / shellIndexThreshold pick the spatial-index form of
// the nested-ring checks over the brute-force O(n^2) form; selection is
// by ring count, never user-visible (spec.md §4.G step 4).
const (
	holeIndexThreshold  = 32
	shellIndexThreshold = 32
)

// IsValid reports whether g satisfies every check of spec.md §4.G. A
// non-nil error is a construction error (spec.md §7) raised while noding g
// against itself, not a validity failure; callers that only care about
// ordinary invalidity can ignore it, but it should be checked when g's
// coordinates might collapse under g's own precision model.
func IsValid(g geom.Geometry) (bool, error) {
	ok, _, err := CheckValidity(g)
	return ok, err
}

// CheckValidity runs the validity checks, short-circuiting on the first
// failure, and returns the offending ValidityError if any. For a Polygon
// or MultiPolygon the order is: coordinate validity; each ring closed,
// with at least 4 points and no consecutive repeats; holes inside their
// shell; holes not nested; shells not nested (MultiPolygon); duplicate
// rings; connected interior; and self-intersection last. Self-intersection
// therefore does not run ahead of the connected-interior and duplicate-
// ring checks, and a geometry failing several of them reports the earlier
// one in this order. Its
// third return is a construction error (spec.md §7's separate error
// class, "returned, not thrown" for validity errors vs. "propagate to the
// caller of the top-level operation" for construction errors): it is
// surfaced only by checkConnectedInterior noding a polygon's boundary
// against itself, and always comes back with ok=false and a nil
// ValidityError when non-nil.
func CheckValidity(g geom.Geometry) (bool, *ValidityError, error) {
	if g == nil || g.IsEmpty() {
		return true, nil, nil
	}
	if err := checkCoordinates(g); err != nil {
		return false, err, nil
	}
	switch v := g.(type) {
	case *geom.LinearRing:
		if err := checkStandaloneRing(v.Coordinates()); err != nil {
			return false, err, nil
		}
		ok, verr := checkSelfIntersecting(g)
		return ok, verr, nil
	case *geom.LineString:
		if v.NumPoints() < 2 {
			return false, newValidityError(TooFewPoints, v.PointN(0), "a LineString needs at least 2 points"), nil
		}
		ok, verr := checkSelfIntersecting(g)
		return ok, verr, nil
	case *geom.Polygon:
		verr, err := checkPolygon(v)
		if err != nil {
			return false, nil, err
		}
		if verr != nil {
			return false, verr, nil
		}
		ok, verr := checkSelfIntersecting(g)
		return ok, verr, nil
	case *geom.MultiPolygon:
		verr, err := checkMultiPolygon(v)
		if err != nil {
			return false, nil, err
		}
		if verr != nil {
			return false, verr, nil
		}
		ok, verr := checkSelfIntersecting(g)
		return ok, verr, nil
	case geom.Collection:
		for i := 0; i < v.NumGeometries(); i++ {
			if ok, verr, err := CheckValidity(v.GeometryN(i)); !ok {
				return false, verr, err
			}
		}
		if err := checkDuplicateRings(g); err != nil {
			return false, err, nil
		}
		return true, nil, nil
	default:
		return true, nil, nil
	}
}

func checkCoordinates(g geom.Geometry) *ValidityError {
	var bad *ValidityError
	g.Apply(func(c geom.Coordinate) {
		if bad == nil && !c.IsFinite() {
			bad = newValidityError(InvalidCoordinate, c, "coordinate is NaN or infinite")
		}
	})
	return bad
}

func checkStandaloneRing(pts []geom.Coordinate) *ValidityError {
	if !isClosed(pts) {
		loc := geom.Coordinate{}
		if len(pts) > 0 {
			loc = pts[0]
		}
		return newValidityError(RingNotClosed, loc, "ring's first and last coordinates differ")
	}
	if len(pts) < 4 {
		loc := geom.Coordinate{}
		if len(pts) > 0 {
			loc = pts[0]
		}
		return newValidityError(TooFewPoints, loc, "a ring needs at least 4 coordinates (3 distinct, plus the closing point)")
	}
	return checkRepeatedPoints(pts)
}

func isClosed(pts []geom.Coordinate) bool {
	if len(pts) == 0 {
		return false
	}
	return pts[0].Equals2D(pts[len(pts)-1])
}

// checkRepeatedPoints rejects consecutive identical points within pts
// (spec.md §4.G step 2); the closing point legitimately repeats pts[0]
// and is not checked against it here.
func checkRepeatedPoints(pts []geom.Coordinate) *ValidityError {
	for i := 1; i < len(pts)-1; i++ {
		if pts[i].Equals2D(pts[i-1]) {
			return newValidityError(RepeatedPoint, pts[i], "ring contains consecutive identical points")
		}
	}
	return nil
}

func checkPolygon(p *geom.Polygon) (*ValidityError, error) {
	shell := p.Shell()
	shellPts := shell.Coordinates()
	if err := checkStandaloneRing(shellPts); err != nil {
		return err, nil
	}
	holes := make([]*geom.LinearRing, p.NumHoles())
	for i := range holes {
		holes[i] = p.Hole(i)
	}
	for _, h := range holes {
		if err := checkStandaloneRing(h.Coordinates()); err != nil {
			return err, nil
		}
	}
	for _, h := range holes {
		if err := checkHoleInsideShell(h, shell); err != nil {
			return err, nil
		}
	}
	if err := checkHolesNotNested(holes); err != nil {
		return err, nil
	}
	if err := checkDuplicateRings(p); err != nil {
		return err, nil
	}
	return checkConnectedInterior(p)
}

func checkMultiPolygon(mp *geom.MultiPolygon) (*ValidityError, error) {
	for i := 0; i < mp.NumPolygons(); i++ {
		shellPts := mp.ShellN(i).Coordinates()
		if err := checkStandaloneRing(shellPts); err != nil {
			return err, nil
		}
		for j := 0; j < mp.NumHolesN(i); j++ {
			h := mp.HoleN(i, j)
			if err := checkStandaloneRing(h.Coordinates()); err != nil {
				return err, nil
			}
			if err := checkHoleInsideShell(h, mp.ShellN(i)); err != nil {
				return err, nil
			}
		}
		holes := make([]*geom.LinearRing, mp.NumHolesN(i))
		for j := range holes {
			holes[j] = mp.HoleN(i, j)
		}
		if err := checkHolesNotNested(holes); err != nil {
			return err, nil
		}
	}
	shells := make([]*geom.LinearRing, mp.NumPolygons())
	for i := range shells {
		shells[i] = mp.ShellN(i)
	}
	if err := checkShellsNotNested(shells); err != nil {
		return err, nil
	}
	if err := checkDuplicateRings(mp); err != nil {
		return err, nil
	}
	for i := 0; i < mp.NumPolygons(); i++ {
		verr, err := checkConnectedInterior(mp.GeometryN(i).(*geom.Polygon))
		if err != nil {
			return nil, err
		}
		if verr != nil {
			return verr, nil
		}
	}
	return nil, nil
}

// checkHoleInsideShell implements spec.md §4.G step 3: pick a hole vertex
// that is not itself a vertex of the shell, and test it with point-in-ring.
func checkHoleInsideShell(hole, shell *geom.LinearRing) *ValidityError {
	holePts, shellPts := hole.Coordinates(), shell.Coordinates()
	test, ok := firstVertexNotIn(holePts, shellPts)
	if !ok {
		test = holePts[0]
	}
	if !algorithm.PointInRing(test, shellPts) {
		return newValidityError(HoleOutsideShell, test, "interior ring lies outside the exterior ring")
	}
	return nil
}

func firstVertexNotIn(candidates, exclude []geom.Coordinate) (geom.Coordinate, bool) {
	excludeSet := make(map[geom.XY]bool, len(exclude))
	for _, p := range exclude {
		excludeSet[p.XY()] = true
	}
	for _, p := range candidates {
		if !excludeSet[p.XY()] {
			return p, true
		}
	}
	return geom.Coordinate{}, false
}

func ringContainsRing(containerPts, testPts []geom.Coordinate) bool {
	test, ok := firstVertexNotIn(testPts, containerPts)
	if !ok {
		test = testPts[0]
	}
	return algorithm.PointInRing(test, containerPts)
}

func checkPairNotNested(a, b *geom.LinearRing, kind ErrorKind, msg string) *ValidityError {
	aPts, bPts := a.Coordinates(), b.Coordinates()
	if !a.Envelope().Intersects(b.Envelope()) {
		return nil
	}
	if ringContainsRing(aPts, bPts) || ringContainsRing(bPts, aPts) {
		return newValidityError(kind, bPts[0], msg)
	}
	return nil
}
