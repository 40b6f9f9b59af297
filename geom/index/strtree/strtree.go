// Package strtree implements a Sort-Tile-Recursive packed R-tree
// (spec.md §4.D): a query-only spatial index built once from
// (envelope, item) pairs.
//
// Grounded on the teacher's ShapeIndex contract in s2/shapeindex.go
// ("build once, query read-only", node capacity as a tuning knob) and
// builder_graph.go's options-driven, one-shot construction style;
// specialized to the STR packing recipe spec.md §4.D spells out exactly
// (sort by x-midpoint, slice into vertical strips, sort each strip by
// y-midpoint, group into leaves of the node capacity).
package strtree

import (
	"math"
	"sort"

	"github.com/geotopo-go/geotopo/geom"
)

// DefaultNodeCapacity is the default leaf/node fan-out (spec.md §4.D).
const DefaultNodeCapacity = 10

// entry pairs an item with its indexed envelope.
type entry struct {
	env  geom.Envelope
	item interface{}
}

// node is an internal or leaf node of the packed tree.
type node struct {
	env      geom.Envelope
	children []*node // non-nil for internal nodes
	entry    *entry  // non-nil for leaf nodes
}

// Tree is a Sort-Tile-Recursive packed R-tree. It is built once via
// NewTree and is immutable (read-only) afterward, per spec.md §4.D and
// §5's "spatial indices are immutable after build".
type Tree struct {
	capacity int
	root     *node
}

// NewTree builds an STR tree over the given (envelope, item) pairs with
// the default node capacity.
func NewTree(envs []geom.Envelope, items []interface{}) *Tree {
	return NewTreeWithCapacity(envs, items, DefaultNodeCapacity)
}

// NewTreeWithCapacity builds an STR tree with the given node capacity.
func NewTreeWithCapacity(envs []geom.Envelope, items []interface{}, capacity int) *Tree {
	if capacity < 2 {
		capacity = DefaultNodeCapacity
	}
	entries := make([]*entry, len(envs))
	for i := range envs {
		entries[i] = &entry{env: envs[i], item: items[i]}
	}
	t := &Tree{capacity: capacity}
	t.root = build(entries, capacity)
	return t
}

// build packs entries into a tree using the STR recipe: sort by
// x-midpoint, split into ceil(sqrt(n/M)) vertical slices, sort each slice
// by y-midpoint, group runs of size M into leaves, then recurse on the
// resulting leaf/node envelopes one level up until a single root remains.
func build(entries []*entry, capacity int) *node {
	if len(entries) == 0 {
		return &node{env: geom.EmptyEnvelope()}
	}
	leaves := make([]*node, len(entries))
	for i, e := range entries {
		leaves[i] = &node{env: e.env, entry: e}
	}
	return buildLevel(leaves, capacity)
}

// buildLevel packs a set of already-built nodes (leaves on the first
// call, internal nodes on subsequent calls) into the next level up,
// recursing until one node remains.
func buildLevel(nodes []*node, capacity int) *node {
	if len(nodes) == 1 {
		return nodes[0]
	}

	numLeaves := len(nodes)
	numSlices := int(math.Ceil(math.Sqrt(float64(numLeaves) / float64(capacity))))
	if numSlices < 1 {
		numSlices = 1
	}
	sliceSize := int(math.Ceil(float64(numLeaves) / float64(numSlices)))

	sort.Slice(nodes, func(i, j int) bool {
		return midX(nodes[i].env) < midX(nodes[j].env)
	})

	var packed []*node
	for s := 0; s < numLeaves; s += sliceSize {
		end := s + sliceSize
		if end > numLeaves {
			end = numLeaves
		}
		slice := nodes[s:end]
		sort.Slice(slice, func(i, j int) bool {
			return midY(slice[i].env) < midY(slice[j].env)
		})
		for g := 0; g < len(slice); g += capacity {
			ge := g + capacity
			if ge > len(slice) {
				ge = len(slice)
			}
			group := slice[g:ge]
			packed = append(packed, groupNode(group))
		}
	}
	return buildLevel(packed, capacity)
}

func groupNode(children []*node) *node {
	env := geom.EmptyEnvelope()
	for _, c := range children {
		env = env.ExpandToInclude(c.env)
	}
	return &node{env: env, children: children}
}

func midX(e geom.Envelope) float64 { return (e.MinX + e.MaxX) / 2 }
func midY(e geom.Envelope) float64 { return (e.MinY + e.MaxY) / 2 }

// Query returns every item whose indexed envelope intersects search.
func (t *Tree) Query(search geom.Envelope) []interface{} {
	var out []interface{}
	t.VisitQuery(search, func(item interface{}) {
		out = append(out, item)
	})
	return out
}

// VisitQuery invokes visit once per item whose indexed envelope
// intersects search, in the visitor form spec.md §4.D names alongside
// the list-returning Query form.
func (t *Tree) VisitQuery(search geom.Envelope, visit func(item interface{})) {
	if t.root == nil {
		return
	}
	queryNode(t.root, search, visit)
}

func queryNode(n *node, search geom.Envelope, visit func(interface{})) {
	if !n.env.Intersects(search) {
		return
	}
	if n.entry != nil {
		visit(n.entry.item)
		return
	}
	for _, c := range n.children {
		queryNode(c, search, visit)
	}
}
