package diagnostic_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/internal/diagnostic"
	"github.com/geotopo-go/geotopo/geom/relate"
	"github.com/geotopo-go/geotopo/geom/valid"
	"github.com/stretchr/testify/require"
)

func TestMatrixJSON(t *testing.T) {
	t.Parallel()
	m := relate.NewIntersectionMatrix()
	m.SetAtLeastFromPattern("2FFF1FFF2")

	out, err := diagnostic.MatrixJSON(m)
	require.NoError(t, err)
	require.Contains(t, out, `"pattern":"2FFF1FFF2"`)
}

func TestValidityErrorJSON(t *testing.T) {
	t.Parallel()
	verr := &valid.ValidityError{
		Kind:     valid.HoleOutsideShell,
		Location: geom.NewCoordinate(3, 4),
		Message:  "interior ring lies outside the exterior ring",
	}
	out, err := diagnostic.ValidityErrorJSON(verr)
	require.NoError(t, err)
	require.Contains(t, out, `"kind":"HoleOutsideShell"`)
	require.Contains(t, out, `"x":3`)
}

func TestValidityErrorJSON_Nil(t *testing.T) {
	t.Parallel()
	out, err := diagnostic.ValidityErrorJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "null", out)
}
