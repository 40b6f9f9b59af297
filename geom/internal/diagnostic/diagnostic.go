// Package diagnostic renders relate/validity results as JSON for test
// failure messages and debug logging. It is never imported by the core
// algorithm packages (geom, geom/algorithm, geom/planar, geom/relate,
// geom/valid, geom/overlay) — JSON lives at the edge, the same boundary
// the teacher family keeps between its pure s2 math and its geojson
// package.
package diagnostic

import (
	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/relate"
	"github.com/geotopo-go/geotopo/geom/valid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// matrixView is the JSON-friendly shape of an IntersectionMatrix: the
// DE-9IM pattern string plus the row-major cells it was built from.
type matrixView struct {
	Pattern string `json:"pattern"`
	Cells   [9]int `json:"cells"`
}

// MatrixJSON renders m as a JSON object, for embedding in a test
// assertion failure message.
func MatrixJSON(m relate.IntersectionMatrix) (string, error) {
	v := matrixView{Pattern: m.String()}
	locs := []geom.Location{geom.LocationInterior, geom.LocationBoundary, geom.LocationExterior}
	i := 0
	for _, a := range locs {
		for _, b := range locs {
			v.Cells[i] = int(m.Get(a, b))
			i++
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// errorView is the JSON-friendly shape of a ValidityError.
type errorView struct {
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Message string  `json:"message"`
}

// ValidityErrorJSON renders err as a JSON object. It returns "null" for
// a nil err, matching encoding/json's convention for a nil pointer.
func ValidityErrorJSON(err *valid.ValidityError) (string, error) {
	if err == nil {
		return "null", nil
	}
	v := errorView{
		Kind:    err.Kind.String(),
		X:       err.Location.X,
		Y:       err.Location.Y,
		Message: err.Message,
	}
	b, marshalErr := json.Marshal(v)
	if marshalErr != nil {
		return "", marshalErr
	}
	return string(b), nil
}
