package geom

// MultiLineString is a 1-dimensional collection of LineStrings.
type MultiLineString struct {
	lines []*LineString
	pm    PrecisionModel
}

// NewMultiLineString returns a MultiLineString over lines.
func NewMultiLineString(lines []*LineString, pm PrecisionModel) *MultiLineString {
	return &MultiLineString{lines: lines, pm: pm}
}

func (m *MultiLineString) Kind() GeometryKind { return KindMultiLineString }
func (m *MultiLineString) Dimension() Dimension { return DimCurve }

// BoundaryDimension applies the Mod-2 rule across all component
// endpoints: if every component is closed, the boundary is empty;
// otherwise it is the (possibly empty, if every open endpoint is shared
// an even number of times) set of odd-degree endpoints, which is point-
// dimensional whenever it is non-empty.
func (m *MultiLineString) BoundaryDimension() Dimension {
	if m.IsEmpty() {
		return DimEmpty
	}
	counts := map[XY]int{}
	for _, l := range m.lines {
		if l.IsEmpty() || l.IsClosed() {
			continue
		}
		counts[l.points[0].XY()]++
		counts[l.points[len(l.points)-1].XY()]++
	}
	for _, n := range counts {
		if n%2 == 1 {
			return DimPoint
		}
	}
	return DimEmpty
}

func (m *MultiLineString) IsEmpty() bool { return len(m.lines) == 0 }
func (m *MultiLineString) PrecisionModel() PrecisionModel { return m.pm }

func (m *MultiLineString) Envelope() Envelope {
	e := EmptyEnvelope()
	for _, l := range m.lines {
		e = e.ExpandToInclude(l.Envelope())
	}
	return e
}

func (m *MultiLineString) Apply(visit func(Coordinate)) {
	for _, l := range m.lines {
		l.Apply(visit)
	}
}

func (m *MultiLineString) NumGeometries() int { return len(m.lines) }
func (m *MultiLineString) GeometryN(i int) Geometry { return m.lines[i] }

func (m *MultiLineString) NumLines() int { return len(m.lines) }
func (m *MultiLineString) LineN(i int) []Coordinate { return m.lines[i].Coordinates() }

var (
	_ Geometry   = (*MultiLineString)(nil)
	_ Collection = (*MultiLineString)(nil)
	_ Lineal     = (*MultiLineString)(nil)
)
