package geom

// LinearRing is a LineString that a valid geometry uses as a closed,
// simple ring: first and last coordinates identical, at least 4 points,
// no self-intersection (spec.md §3). None of these is enforced here; they
// are validity properties checked by the valid package.
type LinearRing struct {
	points []Coordinate
	pm     PrecisionModel
}

// NewLinearRing returns a LinearRing over cs. It returns a
// *ConstructionError only if cs contains a non-finite coordinate. Too few
// points and an unclosed ring are validity properties, not construction
// errors (spec.md §7), and are left for the valid package's TooFewPoints
// and RingNotClosed checks to catch. An empty ring (cs == nil) is permitted
// and represents the empty ring.
func NewLinearRing(cs []Coordinate, pm PrecisionModel) (*LinearRing, error) {
	if len(cs) == 0 {
		return &LinearRing{pm: pm}, nil
	}
	if err := validateCoordinates(cs); err != nil {
		return nil, err
	}
	rounded := make([]Coordinate, len(cs))
	for i, c := range cs {
		rounded[i] = pm.MakePreciseCoordinate(c)
	}
	return &LinearRing{points: rounded, pm: pm}, nil
}

func (r *LinearRing) Kind() GeometryKind { return KindLinearRing }
func (r *LinearRing) Dimension() Dimension { return DimCurve }

// BoundaryDimension is always DimEmpty: a LinearRing's endpoints coincide,
// so its boundary (under the Mod-2 rule) is empty.
func (r *LinearRing) BoundaryDimension() Dimension { return DimEmpty }

func (r *LinearRing) IsEmpty() bool { return len(r.points) == 0 }
func (r *LinearRing) PrecisionModel() PrecisionModel { return r.pm }
func (r *LinearRing) Envelope() Envelope { return EnvelopeFromCoordinates(r.points) }
func (r *LinearRing) NumPoints() int { return len(r.points) }
func (r *LinearRing) PointN(i int) Coordinate { return r.points[i] }
func (r *LinearRing) Coordinates() []Coordinate { return r.points }
func (r *LinearRing) IsClosed() bool { return len(r.points) > 0 }

func (r *LinearRing) Apply(visit func(Coordinate)) {
	for _, c := range r.points {
		visit(c)
	}
}

func (r *LinearRing) NumLines() int { return 1 }
func (r *LinearRing) LineN(i int) []Coordinate { return r.points }

var (
	_ Geometry = (*LinearRing)(nil)
	_ Lineal   = (*LinearRing)(nil)
)
