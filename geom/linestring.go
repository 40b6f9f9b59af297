package geom

// LineString is an ordered, open (or self-intersecting) 1-D curve of two
// or more points.
type LineString struct {
	points []Coordinate
	pm     PrecisionModel
}

// NewLineString returns a LineString over cs, rounded to pm. It returns a
// *ConstructionError only if cs contains a non-finite coordinate. Too few
// points is a validity property, not a construction error (spec.md §7), and
// is left for the valid package's TooFewPoints check.
func NewLineString(cs []Coordinate, pm PrecisionModel) (*LineString, error) {
	if err := validateCoordinates(cs); err != nil {
		return nil, err
	}
	rounded := make([]Coordinate, len(cs))
	for i, c := range cs {
		rounded[i] = pm.MakePreciseCoordinate(c)
	}
	return &LineString{points: rounded, pm: pm}, nil
}

func (l *LineString) Kind() GeometryKind { return KindLineString }
func (l *LineString) Dimension() Dimension { return DimCurve }

// BoundaryDimension is DimPoint unless the LineString is closed, in which
// case its boundary is empty (Mod-2 boundary rule applied to a single
// closed curve: both ends coincide, contributing an even count).
func (l *LineString) BoundaryDimension() Dimension {
	if l.IsEmpty() || l.IsClosed() {
		return DimEmpty
	}
	return DimPoint
}

func (l *LineString) IsEmpty() bool { return len(l.points) == 0 }
func (l *LineString) PrecisionModel() PrecisionModel { return l.pm }
func (l *LineString) Envelope() Envelope { return EnvelopeFromCoordinates(l.points) }
func (l *LineString) NumPoints() int { return len(l.points) }
func (l *LineString) PointN(i int) Coordinate { return l.points[i] }
func (l *LineString) Coordinates() []Coordinate { return l.points }

// IsClosed reports whether the first and last coordinates coincide.
func (l *LineString) IsClosed() bool {
	if len(l.points) < 2 {
		return false
	}
	return l.points[0].Equals2D(l.points[len(l.points)-1])
}

func (l *LineString) Apply(visit func(Coordinate)) {
	for _, c := range l.points {
		visit(c)
	}
}

// NumLines and LineN implement Lineal: a plain LineString is its own
// single line.
func (l *LineString) NumLines() int { return 1 }
func (l *LineString) LineN(i int) []Coordinate { return l.points }

var (
	_ Geometry = (*LineString)(nil)
	_ Lineal   = (*LineString)(nil)
)
