package geom_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/stretchr/testify/require"
)

func TestPrecisionModel_Floating(t *testing.T) {
	t.Parallel()

	pm := geom.NewFloatingPrecisionModel()
	require.True(t, pm.IsFloating())
	require.Equal(t, 1.2345678901234567, pm.MakePrecise(1.2345678901234567))
}

func TestPrecisionModel_Fixed(t *testing.T) {
	t.Parallel()

	pm := geom.NewFixedPrecisionModel(100) // grid spacing 0.01
	require.False(t, pm.IsFloating())
	require.Equal(t, 1.23, pm.MakePrecise(1.234))
	require.Equal(t, 1.24, pm.MakePrecise(1.235))

	c := pm.MakePreciseCoordinate(geom.NewCoordinate3(1.234, 5.678, 9.999))
	require.Equal(t, 1.23, c.X)
	require.Equal(t, 5.68, c.Y)
	require.Equal(t, 9.999, c.Z, "z is carried through unrounded")
}

func TestPrecisionModel_FixedRejectsNonPositiveScale(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { geom.NewFixedPrecisionModel(0) })
	require.Panics(t, func() { geom.NewFixedPrecisionModel(-1) })
}

func TestPrecisionModel_CombinePicksMoreRestrictive(t *testing.T) {
	t.Parallel()

	floating := geom.NewFloatingPrecisionModel()
	coarse := geom.NewFixedPrecisionModel(1)   // grid spacing 1
	fine := geom.NewFixedPrecisionModel(1000)  // grid spacing 0.001

	require.Equal(t, coarse, floating.Combine(coarse), "any Fixed model beats Floating")
	require.Equal(t, coarse, fine.Combine(coarse), "the coarser grid wins between two Fixed models")
	require.Equal(t, floating, floating.Combine(geom.NewFloatingPrecisionModel()))
}
