package geom

// Point is a single-coordinate 0-dimensional geometry.
type Point struct {
	coord   Coordinate
	empty   bool
	pm      PrecisionModel
}

// NewPoint returns a Point at c, rounded to pm. It returns a
// *ConstructionError if c is NaN or infinite.
func NewPoint(c Coordinate, pm PrecisionModel) (*Point, error) {
	if !c.IsFinite() {
		return nil, newConstructionError(NonCoordinateData, c, "point coordinate is NaN or infinite")
	}
	return &Point{coord: pm.MakePreciseCoordinate(c), pm: pm}, nil
}

// NewEmptyPoint returns the empty point.
func NewEmptyPoint(pm PrecisionModel) *Point {
	return &Point{empty: true, pm: pm}
}

func (p *Point) Kind() GeometryKind { return KindPoint }
func (p *Point) Dimension() Dimension { return DimPoint }
func (p *Point) BoundaryDimension() Dimension { return DimEmpty }
func (p *Point) IsEmpty() bool { return p.empty }
func (p *Point) PrecisionModel() PrecisionModel { return p.pm }

func (p *Point) Envelope() Envelope {
	if p.empty {
		return EmptyEnvelope()
	}
	return EnvelopeFromCoordinate(p.coord)
}

// Coordinate returns the point's single coordinate. Calling it on an empty
// point returns the zero Coordinate; callers must check IsEmpty first.
func (p *Point) Coordinate() Coordinate { return p.coord }

func (p *Point) Apply(visit func(Coordinate)) {
	if !p.empty {
		visit(p.coord)
	}
}

var _ Geometry = (*Point)(nil)
