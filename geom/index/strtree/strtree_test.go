package strtree_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/index/strtree"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, maxX, maxY float64) geom.Envelope {
	return geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(minX, minY),
		geom.NewCoordinate(maxX, maxY),
	})
}

func TestTree_Query(t *testing.T) {
	t.Parallel()
	envs := []geom.Envelope{
		box(0, 0, 1, 1),
		box(5, 5, 6, 6),
		box(10, 10, 11, 11),
	}
	items := []interface{}{"a", "b", "c"}
	tree := strtree.NewTree(envs, items)

	got := tree.Query(box(4, 4, 7, 7))
	require.Equal(t, []interface{}{"b"}, got)
}

func TestTree_QueryMatchesMultiple(t *testing.T) {
	t.Parallel()
	envs := []geom.Envelope{
		box(0, 0, 2, 2),
		box(1, 1, 3, 3),
		box(10, 10, 11, 11),
	}
	items := []interface{}{"a", "b", "c"}
	tree := strtree.NewTree(envs, items)

	got := tree.Query(box(0, 0, 3, 3))
	require.ElementsMatch(t, []interface{}{"a", "b"}, got)
}

func TestTree_VisitQuery(t *testing.T) {
	t.Parallel()
	envs := []geom.Envelope{box(0, 0, 1, 1)}
	tree := strtree.NewTree(envs, []interface{}{"only"})

	var visited []interface{}
	tree.VisitQuery(box(0, 0, 1, 1), func(item interface{}) {
		visited = append(visited, item)
	})
	require.Equal(t, []interface{}{"only"}, visited)
}

func TestTree_EmptyQueryNoMatch(t *testing.T) {
	t.Parallel()
	envs := []geom.Envelope{box(0, 0, 1, 1)}
	tree := strtree.NewTree(envs, []interface{}{"only"})

	require.Empty(t, tree.Query(box(100, 100, 101, 101)))
}

func TestTree_BuildWithCapacity(t *testing.T) {
	t.Parallel()
	n := 50
	envs := make([]geom.Envelope, n)
	items := make([]interface{}, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		envs[i] = box(x, x, x+1, x+1)
		items[i] = i
	}
	tree := strtree.NewTreeWithCapacity(envs, items, 4)

	got := tree.Query(box(10, 10, 11, 11))
	require.Contains(t, got, 10)
}
