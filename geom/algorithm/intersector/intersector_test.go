package intersector_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/algorithm/intersector"
	"github.com/stretchr/testify/require"
)

func pm() geom.PrecisionModel { return geom.NewFloatingPrecisionModel() }

func TestComputeIntersection_ProperCross(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(4, 4),
		geom.NewCoordinate(0, 4), geom.NewCoordinate(4, 0),
	)
	require.Equal(t, intersector.PointIntersection, li.Result())
	require.Equal(t, 1, li.NumIntersections())
	require.True(t, li.IsProper())
	require.InDelta(t, 2.0, li.IntersectionN(0).X, 1e-9)
	require.InDelta(t, 2.0, li.IntersectionN(0).Y, 1e-9)
}

func TestComputeIntersection_NoIntersection(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(0, 10), geom.NewCoordinate(1, 10),
	)
	require.Equal(t, intersector.NoIntersection, li.Result())
	require.Equal(t, 0, li.NumIntersections())
}

func TestComputeIntersection_SharedEndpointIsNotProper(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	shared := geom.NewCoordinate(1, 1)
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), shared,
		shared, geom.NewCoordinate(2, 0),
	)
	require.Equal(t, intersector.PointIntersection, li.Result())
	require.False(t, li.IsProper())
	require.True(t, li.IntersectionN(0).Equals2D(shared))
}

func TestComputeIntersection_Collinear(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(4, 0),
		geom.NewCoordinate(2, 0), geom.NewCoordinate(6, 0),
	)
	require.Equal(t, intersector.CollinearIntersection, li.Result())
	require.Equal(t, 2, li.NumIntersections())
	require.InDelta(t, 2.0, li.IntersectionN(0).X, 1e-9)
	require.InDelta(t, 4.0, li.IntersectionN(1).X, 1e-9)
}

func TestComputeIntersection_CollinearDisjoint(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(2, 0), geom.NewCoordinate(3, 0),
	)
	require.Equal(t, intersector.NoIntersection, li.Result())
}

func TestComputeIntersection_Reset(t *testing.T) {
	t.Parallel()
	li := intersector.New(pm())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(4, 4),
		geom.NewCoordinate(0, 4), geom.NewCoordinate(4, 0),
	)
	require.Equal(t, intersector.PointIntersection, li.Result())
	li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(0, 10), geom.NewCoordinate(1, 10),
	)
	require.Equal(t, intersector.NoIntersection, li.Result())
}
