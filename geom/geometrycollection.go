package geom

// GeometryCollection is a heterogeneous collection of Geometry values of
// possibly mixed dimension.
type GeometryCollection struct {
	geometries []Geometry
	pm         PrecisionModel
}

// NewGeometryCollection returns a GeometryCollection over gs.
func NewGeometryCollection(gs []Geometry, pm PrecisionModel) *GeometryCollection {
	return &GeometryCollection{geometries: gs, pm: pm}
}

func (g *GeometryCollection) Kind() GeometryKind { return KindGeometryCollection }

// Dimension is the maximum dimension of any component, the OGC rule for
// mixed collections (spec.md's SPEC_FULL supplement: Geometry.Dimension
// plumbing for GeometryCollection).
func (g *GeometryCollection) Dimension() Dimension {
	d := DimEmpty
	for _, sub := range g.geometries {
		if sub.Dimension() > d {
			d = sub.Dimension()
		}
	}
	return d
}

// BoundaryDimension is the maximum boundary dimension across components
// whose own dimension equals the collection's overall dimension (lower-
// dimensional components contribute no boundary to the collection as a
// whole, mirroring how a Point contributes nothing to a mixed A/B compare).
func (g *GeometryCollection) BoundaryDimension() Dimension {
	top := g.Dimension()
	if top == DimEmpty {
		return DimEmpty
	}
	d := DimEmpty
	for _, sub := range g.geometries {
		if sub.Dimension() == top && sub.BoundaryDimension() > d {
			d = sub.BoundaryDimension()
		}
	}
	return d
}

func (g *GeometryCollection) IsEmpty() bool {
	for _, sub := range g.geometries {
		if !sub.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *GeometryCollection) PrecisionModel() PrecisionModel { return g.pm }

func (g *GeometryCollection) Envelope() Envelope {
	e := EmptyEnvelope()
	for _, sub := range g.geometries {
		e = e.ExpandToInclude(sub.Envelope())
	}
	return e
}

func (g *GeometryCollection) Apply(visit func(Coordinate)) {
	for _, sub := range g.geometries {
		sub.Apply(visit)
	}
}

func (g *GeometryCollection) NumGeometries() int { return len(g.geometries) }
func (g *GeometryCollection) GeometryN(i int) Geometry { return g.geometries[i] }

var (
	_ Geometry   = (*GeometryCollection)(nil)
	_ Collection = (*GeometryCollection)(nil)
)
