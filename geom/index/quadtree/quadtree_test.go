package quadtree_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/index/quadtree"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, maxX, maxY float64) geom.Envelope {
	return geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(minX, minY),
		geom.NewCoordinate(maxX, maxY),
	})
}

func TestTree_InsertAndQuery(t *testing.T) {
	t.Parallel()
	tree := quadtree.NewTree(box(0, 0, 100, 100))
	tree.Insert(box(1, 1, 2, 2), "a")
	tree.Insert(box(50, 50, 51, 51), "b")
	tree.Insert(box(90, 90, 91, 91), "c")

	got := tree.Query(box(49, 49, 52, 52))
	require.Equal(t, []interface{}{"b"}, got)
}

func TestTree_QuerySpanningMultipleQuadrants(t *testing.T) {
	t.Parallel()
	tree := quadtree.NewTree(box(0, 0, 100, 100))
	tree.Insert(box(1, 1, 2, 2), "a")
	tree.Insert(box(90, 90, 91, 91), "b")

	got := tree.Query(box(0, 0, 100, 100))
	require.ElementsMatch(t, []interface{}{"a", "b"}, got)
}

func TestTree_Remove(t *testing.T) {
	t.Parallel()
	tree := quadtree.NewTree(box(0, 0, 100, 100))
	env := box(50, 50, 51, 51)
	tree.Insert(env, "b")
	require.NotEmpty(t, tree.Query(env))

	removed := tree.Remove(env, "b")
	require.True(t, removed)
	require.Empty(t, tree.Query(env))
}

func TestTree_RemoveMissingReturnsFalse(t *testing.T) {
	t.Parallel()
	tree := quadtree.NewTree(box(0, 0, 100, 100))
	require.False(t, tree.Remove(box(50, 50, 51, 51), "absent"))
}

func TestTree_SubdivisionManyItems(t *testing.T) {
	t.Parallel()
	tree := quadtree.NewTree(box(0, 0, 1000, 1000))
	for i := 0; i < 200; i++ {
		x := float64(i)
		tree.Insert(box(x, x, x+0.5, x+0.5), i)
	}
	got := tree.Query(box(100, 100, 100.5, 100.5))
	require.Contains(t, got, 100)
}
