package planar

import (
	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
	"github.com/geotopo-go/geotopo/geom/algorithm/intersector"
	"github.com/geotopo-go/geotopo/geom/index/chain"
)

// GeometryGraph builds a Graph from a single geometry argument (0 or 1
// -- the position the geometry occupies in a two-geometry operation),
// per spec.md §4.E: one Edge per LineString/LinearRing component
// (Interior-labelled for lineal edges, Boundary/left/right-labelled for
// polygon rings), one labelled node per Point component, and the Mod-2
// rule applied to open lineal endpoints.
//
// Grounded on the teacher's builder_graph.go, which likewise builds a
// standalone arena graph from one input in a single pass before any
// cross-input noding happens; reworked from that file's vertex/edge
// extraction (projected lat/lng loops) to extraction from this module's
// Geometry variants.
type GeometryGraph struct {
	Graph *Graph
	Arg   int

	endpointCounts map[geom.XY]int
}

// NewGeometryGraph builds and returns the graph of g as argument arg.
func NewGeometryGraph(arg int, g geom.Geometry) *GeometryGraph {
	gg := &GeometryGraph{
		Graph:          NewGraph(),
		Arg:            arg,
		endpointCounts: make(map[geom.XY]int),
	}
	gg.addGeometry(g)
	gg.applyBoundaryRule()
	return gg
}

func (gg *GeometryGraph) addGeometry(g geom.Geometry) {
	if g == nil || g.IsEmpty() {
		return
	}
	switch v := g.(type) {
	case *geom.Point:
		gg.Graph.AddLabelAtNode(v.Coordinate(), NewLabelOn(gg.Arg, geom.LocationInterior))
	case *geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addGeometry(v.GeometryN(i))
		}
	case *geom.LineString:
		gg.addLine(v.Coordinates())
	case *geom.LinearRing:
		gg.addLine(v.Coordinates())
	case *geom.MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addGeometry(v.GeometryN(i))
		}
	case *geom.Polygon:
		gg.addPolygon(v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			gg.addPolygonRing(v.ShellN(i), geom.LocationExterior, geom.LocationInterior)
			for j := 0; j < v.NumHolesN(i); j++ {
				gg.addPolygonRing(v.HoleN(i, j), geom.LocationInterior, geom.LocationExterior)
			}
		}
	case *geom.GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addGeometry(v.GeometryN(i))
		}
	}
}

// addLine adds pts as a single Interior-labelled edge and, if the line is
// open (not closed), contributes its two endpoints to the Mod-2 boundary
// count (spec.md §4.E.3).
func (gg *GeometryGraph) addLine(pts []geom.Coordinate) {
	if len(pts) < 2 {
		return
	}
	lbl := NewLabelOn(gg.Arg, geom.LocationInterior)
	gg.Graph.AddEdge(Edge{Points: pts, Label: lbl})
	if !pts[0].Equals2D(pts[len(pts)-1]) {
		gg.endpointCounts[normKey(pts[0])]++
		gg.endpointCounts[normKey(pts[len(pts)-1])]++
	}
}

func (gg *GeometryGraph) addPolygon(p *geom.Polygon) {
	gg.addPolygonRing(p.Shell(), geom.LocationExterior, geom.LocationInterior)
	for i := 0; i < p.NumHoles(); i++ {
		gg.addPolygonRing(p.Hole(i), geom.LocationInterior, geom.LocationExterior)
	}
}

// addPolygonRing adds ring as a Boundary-labelled edge. cwLeft/cwRight
// name the left/right locations ring would have if it were clockwise; a
// ring actually found counter-clockwise has them swapped, so the result
// always describes true left/right regardless of the ring's own winding
// (spec.md §4.E.2).
func (gg *GeometryGraph) addPolygonRing(ring *geom.LinearRing, cwLeft, cwRight geom.Location) {
	pts := ring.Coordinates()
	if len(pts) == 0 {
		return
	}
	left, right := cwLeft, cwRight
	if algorithm.IsCCW(pts) {
		left, right = cwRight, cwLeft
	}
	lbl := NewLabelArea(gg.Arg, geom.LocationBoundary, left, right)
	gg.Graph.AddEdge(Edge{Points: pts, Label: lbl})
}

func (gg *GeometryGraph) applyBoundaryRule() {
	for xy, count := range gg.endpointCounts {
		loc := geom.LocationInterior
		if count%2 == 1 {
			loc = geom.LocationBoundary
		}
		gg.Graph.AddLabelAtNode(geom.NewCoordinate(xy.X, xy.Y), NewLabelOn(gg.Arg, loc))
	}
}

func normKey(c geom.Coordinate) geom.XY { return c.XY() }

// BoundaryLocation returns the location currently recorded for gg's
// argument at the node at coord, or LocationNone if there is no node
// there.
func (gg *GeometryGraph) BoundaryLocation(coord geom.Coordinate) geom.Location {
	if id, ok := gg.Graph.FindNode(coord); ok {
		return gg.Graph.Nodes[id].Label.On(gg.Arg)
	}
	return geom.LocationNone
}

// indexedChain pairs a monotone chain with the id of the edge it came
// from, so overlap results can be traced back to their owning edges.
type indexedChain struct {
	edge EdgeID
	c    *chain.Chain
}

func chainsOf(g *GeometryGraph) []indexedChain {
	var out []indexedChain
	for i := range g.Graph.Edges {
		for _, c := range chain.ChainsOf(g.Graph.Edges[i].Points) {
			out = append(out, indexedChain{edge: EdgeID(i), c: c})
		}
	}
	return out
}

// ComputeSelfNodes finds every intersection among gg's own edges and
// records it on both edges involved, creating a graph node at each
// (spec.md §4.E step 3). Call SplitAtIntersections afterward to rebuild
// the edge arena around the recorded intersections.
func (gg *GeometryGraph) ComputeSelfNodes(li *intersector.LineIntersector) {
	gg.computeIntersections(gg, li)
}

// ComputeEdgeIntersections finds intersections between gg's edges and
// other's, recording them on both sides and adding a node to both
// graphs at each intersection point. This is the primitive the relate
// engine uses to node two geometry graphs against each other (spec.md
// §4.F step 2); passing gg itself as other computes self-nodes.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li *intersector.LineIntersector) {
	gg.computeIntersections(other, li)
}

func (gg *GeometryGraph) computeIntersections(other *GeometryGraph, li *intersector.LineIntersector) {
	self := other == gg
	aChains := chainsOf(gg)
	bChains := aChains
	if !self {
		bChains = chainsOf(other)
	}

	for ai, a := range aChains {
		bStart := 0
		if self {
			bStart = ai
		}
		for bi := bStart; bi < len(bChains); bi++ {
			b := bChains[bi]
			if self && ai == bi {
				// A chain against itself: any shared point between two of
				// its own segments is a vertex they already agree on, not a
				// self-intersection.
				continue
			}
			if !a.c.Envelope().Intersects(b.c.Envelope()) {
				continue
			}
			for _, idx := range chain.OverlapIndices(a.c, b.c) {
				segA, segB := idx[0], idx[1]
				if self && a.edge == b.edge && abs(segA-segB) <= 1 {
					// Adjacent segments of the same edge share only their
					// common vertex.
					continue
				}
				gg.intersectSegments(other, a.edge, segA, b.edge, segB, li, self)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (gg *GeometryGraph) intersectSegments(other *GeometryGraph, edgeA EdgeID, segA int, edgeB EdgeID, segB int, li *intersector.LineIntersector, self bool) {
	ea := gg.Graph.EdgeAt(edgeA)
	eb := ea
	if !self {
		eb = other.Graph.EdgeAt(edgeB)
	} else if edgeA != edgeB {
		eb = gg.Graph.EdgeAt(edgeB)
	}

	p1, p2 := ea.Points[segA], ea.Points[segA+1]
	q1, q2 := eb.Points[segB], eb.Points[segB+1]
	li.ComputeIntersection(p1, p2, q1, q2)

	record := func(pt geom.Coordinate) {
		ea.AddIntersection(pt, segA, distanceAlong(p1, p2, pt))
		eb.AddIntersection(pt, segB, distanceAlong(q1, q2, pt))
		gg.Graph.NodeAt(pt)
		if !self {
			other.Graph.NodeAt(pt)
		}
	}

	switch li.Result() {
	case intersector.PointIntersection:
		record(li.IntersectionN(0))
	case intersector.CollinearIntersection:
		for i := 0; i < li.NumIntersections(); i++ {
			record(li.IntersectionN(i))
		}
	}
}

// distanceAlong returns the fractional position of p projected onto
// segment (a,b), clamped to [0,1].
func distanceAlong(a, b, p geom.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return 0
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / len2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// SplitAtIntersections rebuilds gg's edge and directed-edge arena,
// replacing every edge that accumulated intersections with the chain of
// sub-edges EdgeIntersectionList.SplitEdge produces, so that afterward
// no two directed edges of the graph cross except at a shared node
// (spec.md §4.E step 4). Call once, after every ComputeSelfNodes /
// ComputeEdgeIntersections call of interest has run.
//
// It returns a *geom.ConstructionError of kind geom.EmptyEdge if any
// resulting edge collapses to a single repeated coordinate (spec.md §4.E's
// "a zero-length edge is a fatal construction error", e.g. a rounded-
// precision collapse during splitting) -- a construction error, not a
// validity error, so it propagates to the caller of the top-level
// operation (spec.md §7) rather than being folded into a ValidityError.
func (gg *GeometryGraph) SplitAtIntersections() error {
	oldNodes := gg.Graph.Nodes
	oldEdges := gg.Graph.Edges
	newGraph := NewGraph()

	for i := range oldEdges {
		e := &oldEdges[i]
		if e.Intersections.IsEmpty() {
			newEdge := Edge{Points: e.Points, Label: e.Label}
			if newEdge.IsCollapsed() {
				return &geom.ConstructionError{Kind: geom.EmptyEdge, Location: e.Points[0], Message: "edge collapsed to a single point"}
			}
			newGraph.AddEdge(newEdge)
			continue
		}
		for _, sub := range e.Intersections.SplitEdge(e.Points) {
			if len(sub) < 2 {
				continue
			}
			newEdge := Edge{Points: sub, Label: e.Label}
			if newEdge.IsCollapsed() {
				return &geom.ConstructionError{Kind: geom.EmptyEdge, Location: sub[0], Message: "split edge collapsed to a single point"}
			}
			newGraph.AddEdge(newEdge)
		}
	}
	// Carry forward nodes that own no edge of their own (isolated Point
	// arguments, intersection nodes). Every other node, Mod-2 boundary
	// nodes included, is re-created by AddEdge at a new edge's endpoint
	// with an empty label; its old label is not copied.
	for i := range oldNodes {
		n := &oldNodes[i]
		if n.IsIsolated() {
			newGraph.AddLabelAtNode(n.Coordinate, n.Label)
		}
	}
	gg.Graph = newGraph
	return nil
}
