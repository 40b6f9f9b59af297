// Package overlay implements the edge-ring reconstruction helpers of
// spec.md §4.H: building maximal rings by walking a planar.Graph's
// directed-edge stars, splitting them into minimal rings at
// self-intersection nodes, and locating the shell that contains a given
// ring. These are shared by the validity engine's connected-interior
// check and by any future polygonization utility.
package overlay

import (
	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm"
	"github.com/geotopo-go/geotopo/geom/planar"
)

// EdgeRing is a closed sequence of directed edges, in traversal order,
// together with the coordinate ring it traces.
type EdgeRing struct {
	Edges  []planar.DirEdgeID
	Points []geom.Coordinate
}

// Envelope returns the bounding box of the ring.
func (r *EdgeRing) Envelope() geom.Envelope { return geom.EnvelopeFromCoordinates(r.Points) }

// IsCCW reports whether the ring winds counter-clockwise.
func (r *EdgeRing) IsCCW() bool { return algorithm.IsCCW(r.Points) }

// BuildMaximalRings walks g starting from every not-yet-visited directed
// edge and returns one maximal edge ring per walk. A maximal ring always
// turns to the next directed edge immediately following the incoming
// edge's reverse in the destination node's (counter-clockwise sorted)
// star -- the same turn at every node, per spec.md §4.H; shells and
// holes are told apart afterward by the sign of the resulting ring, not
// by switching the turn direction mid-walk.
func BuildMaximalRings(g *planar.Graph) []*EdgeRing {
	visited := make(map[planar.DirEdgeID]bool)
	var rings []*EdgeRing
	for i := range g.DirEdges {
		start := planar.DirEdgeID(i)
		if visited[start] {
			continue
		}
		ring := walkMaximalRing(g, start, visited)
		if ring != nil {
			rings = append(rings, ring)
		}
	}
	return rings
}

func walkMaximalRing(g *planar.Graph, start planar.DirEdgeID, visited map[planar.DirEdgeID]bool) *EdgeRing {
	var edges []planar.DirEdgeID
	var pts []geom.Coordinate

	d := start
	for {
		if visited[d] {
			// Degenerate graph (dangling edge, isolated loop) fed back into
			// itself before closing on start: stop rather than loop forever.
			break
		}
		visited[d] = true
		edges = append(edges, d)
		de := g.DirEdge(d)
		pts = append(pts, g.Node(de.From).Coordinate)

		next := g.NextOut(g.Sym(d))
		if next == planar.NoDirEdge {
			break
		}
		if next == start {
			pts = append(pts, g.Node(g.DirEdge(start).From).Coordinate)
			break
		}
		d = next
	}
	if len(edges) < 3 {
		return nil
	}
	return &EdgeRing{Edges: edges, Points: pts}
}

// SplitIntoMinimalRings detects nodes a maximal ring revisits (degree > 1
// within the ring, spec.md §4.H) and peels each revisit off as its own
// minimal ring, leaving the outer walk to continue past the split.
func SplitIntoMinimalRings(g *planar.Graph, maximal *EdgeRing) []*EdgeRing {
	type stackEntry struct {
		dirEdge planar.DirEdgeID
		node    planar.NodeID
	}
	var stack []stackEntry
	seen := make(map[planar.NodeID]int) // node -> index of its first occurrence on the stack
	var minimal []*EdgeRing

	flush := func(from int) {
		sub := stack[from:]
		if len(sub) < 3 {
			return
		}
		edges := make([]planar.DirEdgeID, len(sub))
		pts := make([]geom.Coordinate, 0, len(sub)+1)
		for i, e := range sub {
			edges[i] = e.dirEdge
			pts = append(pts, g.Node(e.node).Coordinate)
		}
		pts = append(pts, g.Node(sub[0].node).Coordinate)
		minimal = append(minimal, &EdgeRing{Edges: edges, Points: pts})
	}

	for _, d := range maximal.Edges {
		de := g.DirEdge(d)
		node := de.From
		if idx, ok := seen[node]; ok {
			flush(idx)
			stack = stack[:idx]
			for n, i := range seen {
				if i >= idx {
					delete(seen, n)
				}
			}
		}
		seen[node] = len(stack)
		stack = append(stack, stackEntry{dirEdge: d, node: node})
	}
	if len(stack) >= 3 {
		flush(0)
	}
	return minimal
}

// FindEdgeRingContaining returns the smallest ring among shellList whose
// envelope strictly contains test's envelope and which actually contains
// a vertex of test that is not itself a vertex of the candidate (spec.md
// §4.H). It returns nil if no shell qualifies.
func FindEdgeRingContaining(test *EdgeRing, shellList []*EdgeRing) *EdgeRing {
	var best *EdgeRing
	var bestEnv geom.Envelope
	testEnv := test.Envelope()

	testPt, ok := nonSharedVertex(test, nil)
	if !ok {
		return nil
	}

	for _, shell := range shellList {
		shellEnv := shell.Envelope()
		if !shellEnv.ContainsStrict(testEnv) {
			continue
		}
		pt, ok := nonSharedVertex(test, shell)
		if !ok {
			pt = testPt
		}
		if !algorithm.PointInRing(pt, shell.Points) {
			continue
		}
		if best == nil || shellEnv.Area() < bestEnv.Area() {
			best = shell
			bestEnv = shellEnv
		}
	}
	return best
}

// nonSharedVertex returns a vertex of ring that is not also a vertex of
// exclude (or any vertex, if exclude is nil).
func nonSharedVertex(ring *EdgeRing, exclude *EdgeRing) (geom.Coordinate, bool) {
	if exclude == nil {
		if len(ring.Points) == 0 {
			return geom.Coordinate{}, false
		}
		return ring.Points[0], true
	}
	excludeSet := make(map[geom.XY]bool, len(exclude.Points))
	for _, p := range exclude.Points {
		excludeSet[p.XY()] = true
	}
	for _, p := range ring.Points {
		if !excludeSet[p.XY()] {
			return p, true
		}
	}
	return geom.Coordinate{}, false
}

