package geom_test

import (
	"math"
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/stretchr/testify/require"
)

func TestPoint_Basics(t *testing.T) {
	t.Parallel()

	pm := geom.NewFloatingPrecisionModel()
	p, err := geom.NewPoint(geom.NewCoordinate(1, 2), pm)
	require.NoError(t, err)

	require.Equal(t, geom.KindPoint, p.Kind())
	require.Equal(t, geom.DimPoint, p.Dimension())
	require.Equal(t, geom.DimEmpty, p.BoundaryDimension(), "a point has no boundary")
	require.False(t, p.IsEmpty())
	require.Equal(t, geom.NewCoordinate(1, 2).XY(), p.Coordinate().XY())

	env := p.Envelope()
	require.Equal(t, 1.0, env.MinX)
	require.Equal(t, 1.0, env.MaxX)
}

func TestPoint_RejectsNonFiniteCoordinate(t *testing.T) {
	t.Parallel()

	pm := geom.NewFloatingPrecisionModel()
	_, err := geom.NewPoint(geom.NewCoordinate(math.NaN(), 0), pm)
	require.Error(t, err)
}

func TestPoint_Empty(t *testing.T) {
	t.Parallel()

	p := geom.NewEmptyPoint(geom.NewFloatingPrecisionModel())
	require.True(t, p.IsEmpty())
	require.True(t, p.Envelope().IsEmpty())

	var visited []geom.Coordinate
	p.Apply(func(c geom.Coordinate) { visited = append(visited, c) })
	require.Empty(t, visited, "Apply must not visit an empty point's zero coordinate")
}

func TestPoint_PrecisionIsApplied(t *testing.T) {
	t.Parallel()

	pm := geom.NewFixedPrecisionModel(100)
	p, err := geom.NewPoint(geom.NewCoordinate(1.234, 5.678), pm)
	require.NoError(t, err)
	require.Equal(t, 1.23, p.Coordinate().X)
	require.Equal(t, 5.68, p.Coordinate().Y)
}
