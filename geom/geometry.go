package geom

// Dimension is the topological dimension of a geometry or of one cell of
// an IntersectionMatrix: -1 means empty, 0 a point set, 1 a curve, 2 an
// area.
type Dimension int

const (
	// DimEmpty marks an empty intersection (matrix cell value -1).
	DimEmpty Dimension = -1
	DimPoint Dimension = 0
	DimCurve Dimension = 1
	DimArea  Dimension = 2
)

func (d Dimension) String() string {
	switch d {
	case DimEmpty:
		return "F"
	case DimPoint:
		return "0"
	case DimCurve:
		return "1"
	case DimArea:
		return "2"
	default:
		return "?"
	}
}

// Location is a point's topological position relative to a geometry.
type Location int

const (
	// LocationNone marks "not applicable" (used as the zero value of a Label cell).
	LocationNone Location = iota
	LocationInterior
	LocationBoundary
	LocationExterior
)

func (l Location) String() string {
	switch l {
	case LocationInterior:
		return "I"
	case LocationBoundary:
		return "B"
	case LocationExterior:
		return "E"
	default:
		return "-"
	}
}

// GeometryKind tags the variant a Geometry value holds. The engines
// dispatch on a Geometry with type switches over the concrete types and
// the Collection/Areal/Lineal interfaces, never with reflection; Kind()
// reports the same variant as a plain value.
type GeometryKind int

const (
	KindPoint GeometryKind = iota
	KindMultiPoint
	KindLineString
	KindLinearRing
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindGeometryCollection
)

func (k GeometryKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindLinearRing:
		return "LinearRing"
	case KindMultiLineString:
		return "MultiLineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry is the capability set every variant exposes to the topology
// core: envelope, dimension, boundary dimension, emptiness, and a visitor
// hook. It intentionally has no Intersects/Contains/Relate methods of its
// own — those live in the relate and valid packages as functions over
// Geometry values, so that the data model never has to import the engines
// that consume it (spec.md §6's "builder collaborator contract" is a
// consumer-side interface, not a method set on the producer).
type Geometry interface {
	// Kind reports which variant this value is.
	Kind() GeometryKind
	// Dimension returns the topological dimension of the geometry itself.
	Dimension() Dimension
	// BoundaryDimension returns the dimension of this geometry's boundary,
	// or DimEmpty if the boundary is empty (points, and any geometry with
	// an empty boundary by OGC Mod-2 rules).
	BoundaryDimension() Dimension
	// Envelope returns the geometry's bounding box (EmptyEnvelope for an
	// empty geometry).
	Envelope() Envelope
	// IsEmpty reports whether the geometry has no coordinates.
	IsEmpty() bool
	// PrecisionModel returns the rounding rule carried by this geometry.
	PrecisionModel() PrecisionModel
	// Apply invokes visit once per Coordinate of this geometry; polygons
	// and collections do so by calling Apply on each of their rings or
	// member geometries in turn.
	Apply(visit func(Coordinate))
}

// Collection is implemented by geometries that are themselves made of
// component Geometry values: MultiPoint, MultiLineString, MultiPolygon,
// and GeometryCollection.
type Collection interface {
	Geometry
	NumGeometries() int
	GeometryN(i int) Geometry
}

// Areal is implemented by geometries with one or more rings bounding an
// interior: Polygon and MultiPolygon.
type Areal interface {
	Geometry
	// ShellN returns the exterior ring of the i-th polygon component (i is
	// always 0 for a plain Polygon).
	NumPolygons() int
	ShellN(i int) *LinearRing
	NumHolesN(i int) int
	HoleN(i, j int) *LinearRing
}

// Lineal is implemented by geometries whose coordinates form one or more
// 1-D curves: LineString, LinearRing, MultiLineString.
type Lineal interface {
	Geometry
	NumLines() int
	LineN(i int) []Coordinate
}
