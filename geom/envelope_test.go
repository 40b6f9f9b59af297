package geom_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_EmptyNeverIntersects(t *testing.T) {
	t.Parallel()

	empty := geom.EmptyEnvelope()
	unit := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1),
	})

	require.True(t, empty.IsEmpty())
	require.False(t, empty.Intersects(unit))
	require.False(t, empty.Intersects(empty))
	require.Equal(t, -1.0, empty.Width())
	require.Equal(t, -1.0, empty.Height())
	require.Equal(t, -1.0, empty.Area())
}

func TestEnvelope_FromCoordinates(t *testing.T) {
	t.Parallel()

	e := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(2, -1), geom.NewCoordinate(-3, 5), geom.NewCoordinate(0, 0),
	})

	require.Equal(t, -3.0, e.MinX)
	require.Equal(t, 2.0, e.MaxX)
	require.Equal(t, -1.0, e.MinY)
	require.Equal(t, 5.0, e.MaxY)
	require.Equal(t, 5.0, e.Width())
	require.Equal(t, 6.0, e.Height())
}

func TestEnvelope_IntersectsAndContains(t *testing.T) {
	t.Parallel()

	outer := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10),
	})
	inner := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(2, 2), geom.NewCoordinate(4, 4),
	})
	touching := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(10, 10), geom.NewCoordinate(15, 15),
	})
	disjoint := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(20, 20), geom.NewCoordinate(25, 25),
	})

	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
	require.True(t, outer.ContainsStrict(inner))
	require.False(t, outer.ContainsStrict(outer), "ContainsStrict excludes equal bounds")

	require.True(t, outer.Intersects(touching), "shared corner still intersects")
	require.False(t, outer.ContainsStrict(touching))
	require.False(t, outer.Intersects(disjoint))
}

func TestEnvelope_ExpandToIncludeAndExpanded(t *testing.T) {
	t.Parallel()

	a := geom.EnvelopeFromCoordinate(geom.NewCoordinate(0, 0))
	b := geom.EnvelopeFromCoordinate(geom.NewCoordinate(5, 5))

	combined := a.ExpandToInclude(b)
	require.Equal(t, 0.0, combined.MinX)
	require.Equal(t, 5.0, combined.MaxX)

	grown := a.Expanded(1)
	require.Equal(t, -1.0, grown.MinX)
	require.Equal(t, 1.0, grown.MaxX)

	require.True(t, geom.EmptyEnvelope().ExpandToInclude(a) == a)
}

func TestEnvelope_Area(t *testing.T) {
	t.Parallel()

	e := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(3, 2),
	})
	require.Equal(t, 6.0, e.Area())
}
