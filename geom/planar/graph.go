// Package planar implements the shared in-memory planar-graph model of a
// noded geometry (spec.md §3, §4.E): nodes, edges, directed edges,
// edge-ends, and labels, plus the geometry-graph builder that constructs
// one from a Geometry and an argument index.
//
// The graph is an arena: all nodes, edges, and directed edges are owned
// by a single Graph value and referenced by index, never by pointer —
// the redesign spec.md §9 calls for in place of the source's cyclic
// DirectedEdge.sym / Node->EdgeEndStar->DirectedEdges->Node references.
// This shape is grounded on the teacher's builder_graph.go `graph` type,
// which represents vertices and edges as flat slices addressed by
// integer ID rather than as a web of pointers.
package planar

import (
	"sort"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
)

// Graph is the arena owning every Node, Edge, and DirectedEdge of one or
// two noded geometries. Nodes are deduplicated by coordinate; Edges are
// added by the GeometryGraph builder and are split into directed-edge
// pairs via AddEdge.
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	DirEdges []DirectedEdge

	nodeIndex map[geom.XY]NodeID
}

// NewGraph returns an empty graph arena.
func NewGraph() *Graph {
	return &Graph{nodeIndex: make(map[geom.XY]NodeID)}
}

// NodeAt returns the (possibly newly created) node at coord, merging
// with any existing node at that exact (x,y) coordinate.
func (g *Graph) NodeAt(coord geom.Coordinate) NodeID {
	key := coord.XY()
	if id, ok := g.nodeIndex[key]; ok {
		return id
	}
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, Node{Coordinate: coord})
	g.nodeIndex[key] = id
	return id
}

// FindNode reports the node already present at coord, if any.
func (g *Graph) FindNode(coord geom.Coordinate) (NodeID, bool) {
	id, ok := g.nodeIndex[coord.XY()]
	return id, ok
}

// Node returns a pointer to the node at id, for in-place Label updates.
func (g *Graph) Node(id NodeID) *Node { return &g.Nodes[id] }

// AddLabelAtNode merges lbl into the label of the node at coord,
// creating the node if it does not already exist. Used for Point
// arguments and for the Mod-2 boundary-node rule (spec.md §4.E.3).
func (g *Graph) AddLabelAtNode(coord geom.Coordinate, lbl Label) NodeID {
	id := g.NodeAt(coord)
	g.Nodes[id].Label = g.Nodes[id].Label.Merge(lbl)
	return id
}

// AddEdge appends edge to the arena and creates its forward/reverse
// DirectedEdge pair, threading each into its origin node's star in
// angular order. It returns the new edge's id.
func (g *Graph) AddEdge(edge Edge) EdgeID {
	id := EdgeID(len(g.Edges))
	g.Edges = append(g.Edges, edge)

	pts := edge.Points
	from := g.NodeAt(pts[0])
	to := g.NodeAt(pts[len(pts)-1])

	fwdID := DirEdgeID(len(g.DirEdges))
	revID := fwdID + 1
	fwd := DirectedEdge{
		Edge: id, Forward: true, From: from, To: to,
		directionPt: pts[1], Sym: revID, Next: NoDirEdge, Label: edge.Label,
	}
	rev := DirectedEdge{
		Edge: id, Forward: false, From: to, To: from,
		directionPt: pts[len(pts)-2], Sym: fwdID, Next: NoDirEdge, Label: edge.Label.Flip(),
	}
	dx, dy := fwd.directionPt.X-pts[0].X, fwd.directionPt.Y-pts[0].Y
	fwd.Quadrant = quadrantOf(dx, dy)
	dx2, dy2 := rev.directionPt.X-pts[len(pts)-1].X, rev.directionPt.Y-pts[len(pts)-1].Y
	rev.Quadrant = quadrantOf(dx2, dy2)

	g.DirEdges = append(g.DirEdges, fwd, rev)
	g.insertIntoStar(from, fwdID)
	g.insertIntoStar(to, revID)
	return id
}

// insertIntoStar inserts dirEdge into node's star, keeping the star
// sorted counterclockwise by direction (spec.md §4.E.3).
func (g *Graph) insertIntoStar(node NodeID, dirEdge DirEdgeID) {
	n := &g.Nodes[node]
	d := &g.DirEdges[dirEdge]
	i := sort.Search(len(n.star), func(i int) bool {
		o := &g.DirEdges[n.star[i]]
		return compareDirection(n.Coordinate, d.directionPt, d.Quadrant, o.directionPt, o.Quadrant, orientInt) <= 0
	})
	n.star = append(n.star, NoDirEdge)
	copy(n.star[i+1:], n.star[i:])
	n.star[i] = dirEdge
}

// orientInt adapts algorithm.OrientationIndex to the plain int sign
// compareDirection expects.
func orientInt(p, q, r geom.Coordinate) int {
	return int(algorithm.OrientationIndex(p, q, r))
}

// DirEdge returns a pointer to the directed edge at id.
func (g *Graph) DirEdge(id DirEdgeID) *DirectedEdge { return &g.DirEdges[id] }

// Sym returns the reverse direction of the directed edge at id.
func (g *Graph) Sym(id DirEdgeID) DirEdgeID { return g.DirEdges[id].Sym }

// EdgeAt returns a pointer to the edge at id.
func (g *Graph) EdgeAt(id EdgeID) *Edge { return &g.Edges[id] }

// NextOut returns the directed edge immediately counterclockwise after
// from in from's origin node's star, used by ring reconstruction
// (spec.md §4.H) to find the next edge of a maximal ring at a node.
func (g *Graph) NextOut(from DirEdgeID) DirEdgeID {
	d := &g.DirEdges[from]
	star := g.Nodes[d.From].star
	for i, id := range star {
		if id == from {
			return star[(i+1)%len(star)]
		}
	}
	return NoDirEdge
}

// NextCW returns the directed edge immediately clockwise before from in
// from's origin node's star, the reverse of NextOut. The ring walks in
// geom/overlay use NextOut only.
func (g *Graph) NextCW(from DirEdgeID) DirEdgeID {
	d := &g.DirEdges[from]
	star := g.Nodes[d.From].star
	for i, id := range star {
		if id == from {
			return star[(i-1+len(star))%len(star)]
		}
	}
	return NoDirEdge
}
