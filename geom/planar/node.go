package planar

import "github.com/geotopo-go/geotopo/geom"

// NodeID indexes into Graph.Nodes. EdgeID and DirEdgeID likewise index
// into Graph.Edges and Graph.DirEdges. These arena indices replace the
// teacher's pointer-linked Node/Edge/DirectedEdge web (spec.md §9).
type NodeID int
type EdgeID int
type DirEdgeID int

// NoNode, NoEdge, and NoDirEdge mark an absent arena reference, the
// index-arena analogue of a nil pointer.
const (
	NoNode    NodeID    = -1
	NoEdge    EdgeID    = -1
	NoDirEdge DirEdgeID = -1
)

// Node is a vertex of the planar graph: a coordinate shared by one or
// more edge endpoints, carrying a Label and a DirectedEdgeStar of the
// directed edges leaving it, ordered counterclockwise by direction
// (spec.md §3, §4.E.3).
type Node struct {
	Coordinate geom.Coordinate
	Label      Label
	star       []DirEdgeID
}

// Star returns the node's outgoing directed edges, ordered
// counterclockwise starting from due east, the order the relate and
// validity engines require when walking edges around a node.
func (n *Node) Star() []DirEdgeID { return n.star }

// IsIsolated reports whether the node has no incident edges: a Point
// argument's node, or an intersection node that no edge starts or ends at
// yet.
func (n *Node) IsIsolated() bool { return len(n.star) == 0 }

// Degree returns the number of directed edges leaving the node.
func (n *Node) Degree() int { return len(n.star) }
