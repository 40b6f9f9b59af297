package relate_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/relate"
	"github.com/stretchr/testify/require"
)

func unitSquare(t *testing.T, f *geom.Factory) *geom.Polygon {
	t.Helper()
	ring, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(1, 0),
		geom.NewCoordinate(1, 1),
		geom.NewCoordinate(0, 1),
		geom.NewCoordinate(0, 0),
	})
	require.NoError(t, err)
	p, err := f.CreatePolygon(ring, nil)
	require.NoError(t, err)
	return p
}

func adjacentSquare(t *testing.T, f *geom.Factory) *geom.Polygon {
	t.Helper()
	ring, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(1, 0),
		geom.NewCoordinate(2, 0),
		geom.NewCoordinate(2, 1),
		geom.NewCoordinate(1, 1),
		geom.NewCoordinate(1, 0),
	})
	require.NoError(t, err)
	p, err := f.CreatePolygon(ring, nil)
	require.NoError(t, err)
	return p
}

// TestRelate_IdenticalSquares is spec.md §8's first seed test: two
// identical unit squares relate with matrix "2FFF1FFF2" and are equal.
func TestRelate_IdenticalSquares(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	a := unitSquare(t, f)
	b := unitSquare(t, f)

	m, err := relate.Relate(a, b)
	require.NoError(t, err)
	require.Equal(t, "2FFF1FFF2", m.String())

	eq, err := relate.Equals(a, b)
	require.NoError(t, err)
	require.True(t, eq)

	contains, err := relate.Contains(a, b)
	require.NoError(t, err)
	require.True(t, contains)

	within, err := relate.Within(a, b)
	require.NoError(t, err)
	require.True(t, within)

	covers, err := relate.Covers(a, b)
	require.NoError(t, err)
	require.True(t, covers)

	overlaps, err := relate.Overlaps(a, b)
	require.NoError(t, err)
	require.False(t, overlaps)

	touches, err := relate.Touches(a, b)
	require.NoError(t, err)
	require.False(t, touches)
}

// TestRelate_TouchingSquares is spec.md §8's second seed test: two
// squares sharing exactly one edge touch along their boundaries and
// share no interior point.
func TestRelate_TouchingSquares(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	a := unitSquare(t, f)
	b := adjacentSquare(t, f)

	m, err := relate.Relate(a, b)
	require.NoError(t, err)
	require.Equal(t, geom.DimCurve, m.Get(geom.LocationBoundary, geom.LocationBoundary))
	require.Equal(t, geom.DimEmpty, m.Get(geom.LocationInterior, geom.LocationInterior))

	touches, err := relate.Touches(a, b)
	require.NoError(t, err)
	require.True(t, touches)

	intersects, err := relate.Intersects(a, b)
	require.NoError(t, err)
	require.True(t, intersects)

	overlaps, err := relate.Overlaps(a, b)
	require.NoError(t, err)
	require.False(t, overlaps)

	disjoint, err := relate.Disjoint(a, b)
	require.NoError(t, err)
	require.False(t, disjoint)
}

// TestRelate_LineCrossesPolygon is spec.md §8's third seed test: a line
// passing fully through a square crosses it, intersects it, and is not
// contained by it (since part of the line lies outside).
func TestRelate_LineCrossesPolygon(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	square := unitSquare(t, f)
	line, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(-0.5, 0.5),
		geom.NewCoordinate(1.5, 0.5),
	})
	require.NoError(t, err)

	intersects, err := relate.Intersects(line, square)
	require.NoError(t, err)
	require.True(t, intersects)

	crosses, err := relate.Crosses(line, square)
	require.NoError(t, err)
	require.True(t, crosses)

	within, err := relate.Within(line, square)
	require.NoError(t, err)
	require.False(t, within)

	contains, err := relate.Contains(square, line)
	require.NoError(t, err)
	require.False(t, contains)
}

// TestRelate_Disjoint verifies two squares with no shared extent relate
// as fully disjoint.
func TestRelate_Disjoint(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	a := unitSquare(t, f)
	ring, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(10, 10),
		geom.NewCoordinate(11, 10),
		geom.NewCoordinate(11, 11),
		geom.NewCoordinate(10, 11),
		geom.NewCoordinate(10, 10),
	})
	require.NoError(t, err)
	b, err := f.CreatePolygon(ring, nil)
	require.NoError(t, err)

	disjoint, err := relate.Disjoint(a, b)
	require.NoError(t, err)
	require.True(t, disjoint)

	intersects, err := relate.Intersects(a, b)
	require.NoError(t, err)
	require.False(t, intersects)
}

// TestRelate_Symmetry checks spec.md §8's invariant that relate commutes
// under transpose: A.relate(B).cell(i,j) = B.relate(A).cell(j,i).
func TestRelate_Symmetry(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	a := unitSquare(t, f)
	b := adjacentSquare(t, f)

	ab, err := relate.Relate(a, b)
	require.NoError(t, err)
	ba, err := relate.Relate(b, a)
	require.NoError(t, err)
	require.Equal(t, ab, ba.Transpose())
}

func TestIntersectionMatrix_Matches(t *testing.T) {
	m := relate.NewIntersectionMatrix()
	m.SetAtLeastFromPattern("212101212")
	require.True(t, m.Matches("2*2***1*2"[:9]))
	require.True(t, m.Matches("T*T***T*T"))
	require.False(t, m.Matches("FFFFFFFFF"))
}

func TestEqualsExact(t *testing.T) {
	f := geom.NewFactory(geom.NewFloatingPrecisionModel())
	a := unitSquare(t, f)
	b := unitSquare(t, f)
	require.True(t, relate.EqualsExact(a, b, 0))

	c := adjacentSquare(t, f)
	require.False(t, relate.EqualsExact(a, c, 0))
}
