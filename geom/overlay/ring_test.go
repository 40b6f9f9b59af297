package overlay_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/overlay"
	"github.com/geotopo-go/geotopo/geom/planar"
	"github.com/stretchr/testify/require"
)

// squareGraph builds a planar.Graph tracing a single closed square ring
// (four directed edges forming one maximal ring each direction).
func squareGraph(t *testing.T) *planar.Graph {
	t.Helper()
	g := planar.NewGraph()
	corners := []geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(4, 0),
		geom.NewCoordinate(4, 4),
		geom.NewCoordinate(0, 4),
	}
	for i := 0; i < len(corners); i++ {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		g.AddEdge(planar.Edge{Points: []geom.Coordinate{a, b}})
	}
	return g
}

func TestBuildMaximalRings_Square(t *testing.T) {
	t.Parallel()
	g := squareGraph(t)

	rings := overlay.BuildMaximalRings(g)
	require.NotEmpty(t, rings)
	for _, r := range rings {
		// walkMaximalRing closes the point sequence by re-appending the
		// start node's coordinate, so Points has one more entry than Edges.
		require.Equal(t, len(r.Edges)+1, len(r.Points))
		require.True(t, r.Points[0].Equals2D(r.Points[len(r.Points)-1]))
	}
}

func TestEdgeRing_Envelope(t *testing.T) {
	t.Parallel()
	g := squareGraph(t)
	rings := overlay.BuildMaximalRings(g)
	require.NotEmpty(t, rings)

	env := rings[0].Envelope()
	require.False(t, env.IsEmpty())
}

func TestSplitIntoMinimalRings_SingleSquareIsAlreadyMinimal(t *testing.T) {
	t.Parallel()
	g := squareGraph(t)
	maximal := overlay.BuildMaximalRings(g)
	require.NotEmpty(t, maximal)

	minimal := overlay.SplitIntoMinimalRings(g, maximal[0])
	require.Len(t, minimal, 1)
	require.Equal(t, len(maximal[0].Edges), len(minimal[0].Edges))
}

// TestFindEdgeRingContaining builds two nested squares and checks that
// the inner one resolves the outer as its containing shell.
func TestFindEdgeRingContaining(t *testing.T) {
	t.Parallel()
	outer := &overlay.EdgeRing{Points: []geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(10, 0),
		geom.NewCoordinate(10, 10),
		geom.NewCoordinate(0, 10),
		geom.NewCoordinate(0, 0),
	}}
	inner := &overlay.EdgeRing{Points: []geom.Coordinate{
		geom.NewCoordinate(2, 2),
		geom.NewCoordinate(4, 2),
		geom.NewCoordinate(4, 4),
		geom.NewCoordinate(2, 4),
		geom.NewCoordinate(2, 2),
	}}

	got := overlay.FindEdgeRingContaining(inner, []*overlay.EdgeRing{outer})
	require.Same(t, outer, got)
}

func TestFindEdgeRingContaining_NoCandidate(t *testing.T) {
	t.Parallel()
	disjoint := &overlay.EdgeRing{Points: []geom.Coordinate{
		geom.NewCoordinate(100, 100),
		geom.NewCoordinate(101, 100),
		geom.NewCoordinate(101, 101),
		geom.NewCoordinate(100, 101),
		geom.NewCoordinate(100, 100),
	}}
	inner := &overlay.EdgeRing{Points: []geom.Coordinate{
		geom.NewCoordinate(2, 2),
		geom.NewCoordinate(4, 2),
		geom.NewCoordinate(4, 4),
		geom.NewCoordinate(2, 4),
		geom.NewCoordinate(2, 2),
	}}

	got := overlay.FindEdgeRingContaining(inner, []*overlay.EdgeRing{disjoint})
	require.Nil(t, got)
}
