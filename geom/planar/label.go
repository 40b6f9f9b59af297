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

import "github.com/geotopo-go/geotopo/geom"

// Position names the three cells of a per-argument topological location:
// the point ON the edge/node itself, and the LEFT/RIGHT sides of a
// directed area edge.
type Position int

const (
	PositionOn Position = iota
	PositionLeft
	PositionRight
)

// argLocation holds the three Position cells for one geometry argument.
type argLocation [3]geom.Location

// merge takes the union of known (non-None) cells between two
// argLocations, per spec.md §4.F step 7's "composite label by ... merge".
func (a argLocation) merge(o argLocation) argLocation {
	var out argLocation
	for p := 0; p < 3; p++ {
		out[p] = a[p]
		if out[p] == geom.LocationNone {
			out[p] = o[p]
		}
	}
	return out
}

// flip swaps LEFT and RIGHT, the effect of reversing a directed edge's
// orientation on its per-argument location.
func (a argLocation) flip() argLocation {
	return argLocation{a[PositionOn], a[PositionRight], a[PositionLeft]}
}

// Label is the per-geometry-argument topological location of a graph
// element (node, edge, or directed edge), for arguments 0 and 1
// (spec.md §3). A Label composes under Flip (orientation reversal) and
// Merge (union of known cells).
type Label struct {
	loc [2]argLocation
}

// NewLabel returns a label with both arguments entirely LocationNone.
func NewLabel() Label { return Label{} }

// NewLabelOn returns a label with only argument arg's ON cell set to loc;
// used for the simple node/point labels spec.md §4.E.3 describes.
func NewLabelOn(arg int, loc geom.Location) Label {
	var l Label
	l.loc[arg][PositionOn] = loc
	return l
}

// NewLabelArea returns a label with argument arg's ON/LEFT/RIGHT cells
// set, used for area-edge labels.
func NewLabelArea(arg int, on, left, right geom.Location) Label {
	var l Label
	l.loc[arg] = argLocation{on, left, right}
	return l
}

// On returns the ON-position location for argument arg.
func (l Label) On(arg int) geom.Location { return l.loc[arg][PositionOn] }

// Side returns the location at the given Position for argument arg.
func (l Label) Side(arg int, pos Position) geom.Location { return l.loc[arg][pos] }

// SetOn sets the ON-position location for argument arg.
func (l *Label) SetOn(arg int, loc geom.Location) { l.loc[arg][PositionOn] = loc }

// SetSide sets the location at the given Position for argument arg.
func (l *Label) SetSide(arg int, pos Position, loc geom.Location) { l.loc[arg][pos] = loc }

// IsNone reports whether argument arg has no known location at all.
func (l Label) IsNone(arg int) bool {
	return l.loc[arg] == argLocation{}
}

// Flip returns the label with both arguments' LEFT/RIGHT swapped, the
// effect on a Label of reversing the directed edge it is attached to.
func (l Label) Flip() Label {
	return Label{loc: [2]argLocation{l.loc[0].flip(), l.loc[1].flip()}}
}

// Merge returns the union (per the merge rule above) of l and o, cell by
// cell, for both arguments.
func (l Label) Merge(o Label) Label {
	return Label{loc: [2]argLocation{l.loc[0].merge(o.loc[0]), l.loc[1].merge(o.loc[1])}}
}

// ToggleOn flips INTERIOR<->EXTERIOR on argument arg's ON cell, leaving
// BOUNDARY and NONE unchanged; used when accumulating edge crossings
// during ring-interior traversal (spec.md §4.G step 7).
func (l *Label) ToggleOn(arg int) {
	switch l.loc[arg][PositionOn] {
	case geom.LocationInterior:
		l.loc[arg][PositionOn] = geom.LocationExterior
	case geom.LocationExterior:
		l.loc[arg][PositionOn] = geom.LocationInterior
	}
}
