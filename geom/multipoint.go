package geom

// MultiPoint is a 0-dimensional collection of Points.
type MultiPoint struct {
	points []*Point
	pm     PrecisionModel
}

// NewMultiPoint returns a MultiPoint over pts.
func NewMultiPoint(pts []*Point, pm PrecisionModel) *MultiPoint {
	return &MultiPoint{points: pts, pm: pm}
}

func (m *MultiPoint) Kind() GeometryKind { return KindMultiPoint }
func (m *MultiPoint) Dimension() Dimension { return DimPoint }
func (m *MultiPoint) BoundaryDimension() Dimension { return DimEmpty }
func (m *MultiPoint) IsEmpty() bool { return len(m.points) == 0 }
func (m *MultiPoint) PrecisionModel() PrecisionModel { return m.pm }

func (m *MultiPoint) Envelope() Envelope {
	e := EmptyEnvelope()
	for _, p := range m.points {
		e = e.ExpandToInclude(p.Envelope())
	}
	return e
}

func (m *MultiPoint) Apply(visit func(Coordinate)) {
	for _, p := range m.points {
		p.Apply(visit)
	}
}

func (m *MultiPoint) NumGeometries() int { return len(m.points) }
func (m *MultiPoint) GeometryN(i int) Geometry { return m.points[i] }

var (
	_ Geometry   = (*MultiPoint)(nil)
	_ Collection = (*MultiPoint)(nil)
)
