package geom_test

import (
	"math"
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_HasZAndFinite(t *testing.T) {
	t.Parallel()

	c2 := geom.NewCoordinate(1, 2)
	require.False(t, c2.HasZ(), "2D coordinate carries the no-z sentinel")
	require.True(t, c2.IsFinite())

	c3 := geom.NewCoordinate3(1, 2, 3)
	require.True(t, c3.HasZ())
	require.True(t, c3.IsFinite())

	nan := geom.NewCoordinate(math.NaN(), 0)
	require.False(t, nan.IsFinite())

	inf := geom.NewCoordinate(math.Inf(1), 0)
	require.False(t, inf.IsFinite())
}

func TestCoordinate_Equals2DIgnoresZ(t *testing.T) {
	t.Parallel()

	a := geom.NewCoordinate(1, 2)
	b := geom.NewCoordinate3(1, 2, 99)
	require.True(t, a.Equals2D(b), "Equals2D compares only x and y")
}

func TestCoordinate_Compare(t *testing.T) {
	t.Parallel()

	a := geom.NewCoordinate(0, 0)
	b := geom.NewCoordinate(1, 0)
	c := geom.NewCoordinate(0, 1)

	require.Equal(t, -1, a.Compare(b), "lower x sorts first")
	require.Equal(t, -1, a.Compare(c), "equal x falls back to y")
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, 1, b.Compare(a))
}

func TestCoordinate_Cross2DAndDot2D(t *testing.T) {
	t.Parallel()

	a := geom.NewCoordinate(1, 0)
	b := geom.NewCoordinate(0, 1)

	require.Equal(t, 1.0, a.Cross2D(b))
	require.Equal(t, 0.0, a.Dot2D(b))
}

func TestCoordinate_DistanceAndDistanceSquared(t *testing.T) {
	t.Parallel()

	a := geom.NewCoordinate(0, 0)
	b := geom.NewCoordinate(3, 4)

	require.Equal(t, 5.0, a.Distance(b))
	require.Equal(t, 25.0, a.DistanceSquared(b))
}

// XY is the NaN-free map key every dedup/tally site in the module keys on
// instead of Coordinate itself, since a 2D Coordinate's Z is never equal to
// itself.
func TestCoordinate_XYIsUsableAsMapKey(t *testing.T) {
	t.Parallel()

	a := geom.NewCoordinate(1, 2)
	b := geom.NewCoordinate(1, 2)

	seen := map[geom.XY]bool{}
	seen[a.XY()] = true
	require.True(t, seen[b.XY()], "two coordinates at the same (x,y) must collide as map keys")

	_, ok := map[geom.Coordinate]bool{a: true}[b]
	require.False(t, ok, "Coordinate itself must never be used as a map key: NaN Z breaks lookup")
}
