package geom_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/stretchr/testify/require"
)

func TestMultiLineString_BoundaryDimensionMod2(t *testing.T) {
	t.Parallel()

	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm)

	open, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
	})
	require.NoError(t, err)

	closed, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(1, 1), geom.NewCoordinate(0, 0),
	})
	require.NoError(t, err)

	allClosed := f.CreateMultiLineString([]*geom.LineString{closed})
	require.Equal(t, geom.DimEmpty, allClosed.BoundaryDimension(), "every component closed means no boundary")

	oneOpen := f.CreateMultiLineString([]*geom.LineString{closed, open})
	require.Equal(t, geom.DimPoint, oneOpen.BoundaryDimension(), "a single open component gives a point boundary")
}

func TestMultiLineString_Basics(t *testing.T) {
	t.Parallel()

	pm := geom.NewFloatingPrecisionModel()
	f := geom.NewFactory(pm)

	l1, err := f.CreateLineString([]geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1)})
	require.NoError(t, err)
	l2, err := f.CreateLineString([]geom.Coordinate{geom.NewCoordinate(5, 5), geom.NewCoordinate(6, 6)})
	require.NoError(t, err)

	mls := f.CreateMultiLineString([]*geom.LineString{l1, l2})

	require.Equal(t, geom.KindMultiLineString, mls.Kind())
	require.Equal(t, geom.DimCurve, mls.Dimension())
	require.Equal(t, 2, mls.NumGeometries())
	require.Equal(t, 2, mls.NumLines())
	require.Equal(t, l1.Coordinates(), mls.LineN(0))

	env := mls.Envelope()
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 6.0, env.MaxY)
}

func TestMultiLineString_Empty(t *testing.T) {
	t.Parallel()

	mls := geom.NewMultiLineString(nil, geom.NewFloatingPrecisionModel())
	require.True(t, mls.IsEmpty())
	require.Equal(t, geom.DimEmpty, mls.BoundaryDimension())
}
