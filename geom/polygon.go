package geom

// Polygon is a 2-D geometry with one exterior ring (the shell) and zero
// or more interior rings (holes). Ring nesting and non-self-intersection
// are validity properties, not construction invariants; a Polygon value
// may be constructed from any set of LinearRings and later found invalid
// by the valid package.
type Polygon struct {
	shell *LinearRing
	holes []*LinearRing
	pm    PrecisionModel
}

// NewPolygon returns a Polygon with the given shell and holes. shell may
// be an empty LinearRing to represent the empty polygon (in which case
// holes must be empty too).
func NewPolygon(shell *LinearRing, holes []*LinearRing, pm PrecisionModel) (*Polygon, error) {
	return &Polygon{shell: shell, holes: holes, pm: pm}, nil
}

func (p *Polygon) Kind() GeometryKind { return KindPolygon }
func (p *Polygon) Dimension() Dimension { return DimArea }

func (p *Polygon) BoundaryDimension() Dimension {
	if p.IsEmpty() {
		return DimEmpty
	}
	return DimCurve
}

func (p *Polygon) IsEmpty() bool { return p.shell == nil || p.shell.IsEmpty() }
func (p *Polygon) PrecisionModel() PrecisionModel { return p.pm }

func (p *Polygon) Envelope() Envelope {
	if p.IsEmpty() {
		return EmptyEnvelope()
	}
	return p.shell.Envelope()
}

func (p *Polygon) Shell() *LinearRing { return p.shell }
func (p *Polygon) NumHoles() int { return len(p.holes) }
func (p *Polygon) Hole(i int) *LinearRing { return p.holes[i] }
func (p *Polygon) Holes() []*LinearRing { return p.holes }

func (p *Polygon) Apply(visit func(Coordinate)) {
	if p.IsEmpty() {
		return
	}
	p.shell.Apply(visit)
	for _, h := range p.holes {
		h.Apply(visit)
	}
}

// Areal implementation: a plain Polygon is its own single component.
func (p *Polygon) NumPolygons() int { return 1 }
func (p *Polygon) ShellN(i int) *LinearRing { return p.shell }
func (p *Polygon) NumHolesN(i int) int { return len(p.holes) }
func (p *Polygon) HoleN(i, j int) *LinearRing { return p.holes[j] }

var (
	_ Geometry = (*Polygon)(nil)
	_ Areal    = (*Polygon)(nil)
)
