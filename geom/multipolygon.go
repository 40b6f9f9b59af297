package geom

// MultiPolygon is a 2-dimensional collection of Polygons. Disjoint-
// interiors-and-touch-at-points-only is a validity property (checked by
// the valid package), not a construction invariant.
type MultiPolygon struct {
	polygons []*Polygon
	pm       PrecisionModel
}

// NewMultiPolygon returns a MultiPolygon over polys.
func NewMultiPolygon(polys []*Polygon, pm PrecisionModel) *MultiPolygon {
	return &MultiPolygon{polygons: polys, pm: pm}
}

func (m *MultiPolygon) Kind() GeometryKind { return KindMultiPolygon }
func (m *MultiPolygon) Dimension() Dimension { return DimArea }

func (m *MultiPolygon) BoundaryDimension() Dimension {
	if m.IsEmpty() {
		return DimEmpty
	}
	return DimCurve
}

func (m *MultiPolygon) IsEmpty() bool { return len(m.polygons) == 0 }
func (m *MultiPolygon) PrecisionModel() PrecisionModel { return m.pm }

func (m *MultiPolygon) Envelope() Envelope {
	e := EmptyEnvelope()
	for _, p := range m.polygons {
		e = e.ExpandToInclude(p.Envelope())
	}
	return e
}

func (m *MultiPolygon) Apply(visit func(Coordinate)) {
	for _, p := range m.polygons {
		p.Apply(visit)
	}
}

func (m *MultiPolygon) NumGeometries() int { return len(m.polygons) }
func (m *MultiPolygon) GeometryN(i int) Geometry { return m.polygons[i] }

func (m *MultiPolygon) NumPolygons() int { return len(m.polygons) }
func (m *MultiPolygon) ShellN(i int) *LinearRing { return m.polygons[i].Shell() }
func (m *MultiPolygon) NumHolesN(i int) int { return m.polygons[i].NumHoles() }
func (m *MultiPolygon) HoleN(i, j int) *LinearRing { return m.polygons[i].Hole(j) }

var (
	_ Geometry   = (*MultiPolygon)(nil)
	_ Collection = (*MultiPolygon)(nil)
	_ Areal      = (*MultiPolygon)(nil)
)
