package valid

import (
	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm/intersector"
	"github.com/geotopo-go/geotopo/geom/overlay"
	"github.com/geotopo-go/geotopo/geom/planar"
)

// checkConnectedInterior implements spec.md §4.G step 7: the interior of
// p must be connected, i.e. no hole may chain-touch the shell so as to
// split it into two pieces. The polygon's own boundary is noded against
// itself, maximal edge rings are walked and split into minimal rings, and
// every minimal ring that carries the polygon's interior on its
// right-hand side must be made of directed edges visited by exactly one
// such ring.
//
// The error return is a *geom.ConstructionError (spec.md §7's construction-
// error class, distinct from the *ValidityError this check otherwise
// reports), surfaced when noding p against itself collapses an edge --
// propagated to the caller of the top-level operation rather than folded
// into a ValidityError.
func checkConnectedInterior(p *geom.Polygon) (*ValidityError, error) {
	gg := planar.NewGeometryGraph(0, p)
	li := intersector.New(p.PrecisionModel())
	gg.ComputeSelfNodes(li)
	if err := gg.SplitAtIntersections(); err != nil {
		return nil, err
	}

	var minimalRings []*overlay.EdgeRing
	for _, maximal := range overlay.BuildMaximalRings(gg.Graph) {
		minimalRings = append(minimalRings, overlay.SplitIntoMinimalRings(gg.Graph, maximal)...)
	}

	visitCount := map[planar.DirEdgeID]int{}
	for _, r := range minimalRings {
		for _, d := range r.Edges {
			visitCount[d]++
		}
	}

	for _, r := range minimalRings {
		if !ringHasInteriorOnRight(gg.Graph, r) {
			continue
		}
		for _, d := range r.Edges {
			if visitCount[d] != 1 {
				loc := gg.Graph.Node(gg.Graph.DirEdge(d).From).Coordinate
				return newValidityError(DisconnectedInterior, loc, "a hole touches the shell in a way that splits the polygon's interior"), nil
			}
		}
	}
	return nil, nil
}

func ringHasInteriorOnRight(g *planar.Graph, r *overlay.EdgeRing) bool {
	for _, d := range r.Edges {
		if g.DirEdge(d).Label.Side(0, planar.PositionRight) == geom.LocationInterior {
			return true
		}
	}
	return false
}
