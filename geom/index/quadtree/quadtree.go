// Package quadtree implements a mutable spatial index over envelopes,
// supporting Insert, Remove, and range Query (spec.md §4.D). It is used
// by the validity engine's nested-ring test, the Open Question decision
// recorded in DESIGN.md.
//
// Grounded on the same "build once, query many" spatial-index contract
// as the teacher's ShapeIndex (s2/shapeindex.go), here made mutable
// because spec.md §4.D requires insert/remove (unlike the teacher's or
// the strtree sibling package's read-only trees).
package quadtree

import "github.com/geotopo-go/geotopo/geom"

// maxItemsPerNode is the split threshold before a leaf subdivides.
const maxItemsPerNode = 8

// maxDepth bounds recursion so that degenerate/coincident envelopes
// cannot cause unbounded subdivision.
const maxDepth = 32

type item struct {
	env   geom.Envelope
	value interface{}
}

// node is a quadrant of the index: either a leaf holding up to
// maxItemsPerNode items, or split into four children.
type node struct {
	bounds   geom.Envelope
	items    []item
	children [4]*node // nil until split
	depth    int
}

// Tree is a mutable envelope-keyed spatial index.
type Tree struct {
	root *node
}

// NewTree returns an empty quadtree covering the given extent. Items
// inserted outside extent are still indexed correctly (at the root) but
// get none of the subdivision benefit.
func NewTree(extent geom.Envelope) *Tree {
	return &Tree{root: &node{bounds: extent}}
}

// Insert adds value indexed under env.
func (t *Tree) Insert(env geom.Envelope, value interface{}) {
	t.root.insert(item{env: env, value: value})
}

func (n *node) insert(it item) {
	if n.children[0] == nil {
		n.items = append(n.items, it)
		if len(n.items) > maxItemsPerNode && n.depth < maxDepth {
			n.split()
		}
		return
	}
	placed := false
	for _, c := range n.children {
		if c.bounds.Contains(it.env) {
			c.insert(it)
			placed = true
			break
		}
	}
	if !placed {
		// Straddles more than one quadrant (or the bounds are empty):
		// keep it at this level.
		n.items = append(n.items, it)
	}
}

func (n *node) split() {
	midX := (n.bounds.MinX + n.bounds.MaxX) / 2
	midY := (n.bounds.MinY + n.bounds.MaxY) / 2
	quads := [4]geom.Envelope{
		bounds(n.bounds.MinX, midX, n.bounds.MinY, midY),
		bounds(midX, n.bounds.MaxX, n.bounds.MinY, midY),
		bounds(n.bounds.MinX, midX, midY, n.bounds.MaxY),
		bounds(midX, n.bounds.MaxX, midY, n.bounds.MaxY),
	}
	for i, q := range quads {
		n.children[i] = &node{bounds: q, depth: n.depth + 1}
	}
	pending := n.items
	n.items = nil
	for _, it := range pending {
		n.insert(it)
	}
}

func bounds(minX, maxX, minY, maxY float64) geom.Envelope {
	return geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(minX, minY),
		geom.NewCoordinate(maxX, maxY),
	})
}

// Remove deletes the first item found indexed under env whose value
// equals target (by ==, so value should be a pointer or other
// comparable identity). Reports whether an item was removed.
func (t *Tree) Remove(env geom.Envelope, target interface{}) bool {
	return t.root.remove(env, target)
}

func (n *node) remove(env geom.Envelope, target interface{}) bool {
	for i, it := range n.items {
		if it.value == target {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	if n.children[0] == nil {
		return false
	}
	for _, c := range n.children {
		if c.bounds.Intersects(env) && c.remove(env, target) {
			return true
		}
	}
	return false
}

// Query returns the values of every item whose indexed envelope
// intersects search.
func (t *Tree) Query(search geom.Envelope) []interface{} {
	var out []interface{}
	t.root.query(search, func(v interface{}) { out = append(out, v) })
	return out
}

func (n *node) query(search geom.Envelope, visit func(interface{})) {
	if n.depth > 0 && !n.bounds.IsEmpty() && !n.bounds.Intersects(search) {
		return
	}
	for _, it := range n.items {
		if it.env.Intersects(search) {
			visit(it.value)
		}
	}
	if n.children[0] == nil {
		return
	}
	for _, c := range n.children {
		c.query(search, visit)
	}
}
