package geom

import "math"

// PrecisionModelKind selects the rounding rule a PrecisionModel applies.
type PrecisionModelKind int

const (
	// Floating applies no rounding at all (full double precision).
	Floating PrecisionModelKind = iota
	// FloatingSingle rounds to 32-bit float semantics.
	FloatingSingle
	// Fixed rounds each coordinate to round(v*scale)/scale.
	Fixed
)

// PrecisionModel is an immutable rounding rule. It is a property of a
// geometry and is carried transitively through operations: the effective
// precision of an operation's output is the more restrictive of its two
// input models (see Combine).
type PrecisionModel struct {
	kind  PrecisionModelKind
	scale float64
}

// NewFloatingPrecisionModel returns the no-rounding precision model.
func NewFloatingPrecisionModel() PrecisionModel {
	return PrecisionModel{kind: Floating}
}

// NewFloatingSinglePrecisionModel returns the 32-bit-rounding precision model.
func NewFloatingSinglePrecisionModel() PrecisionModel {
	return PrecisionModel{kind: FloatingSingle}
}

// NewFixedPrecisionModel returns a precision model that snaps coordinates
// to a grid of spacing 1/scale. scale must be positive.
func NewFixedPrecisionModel(scale float64) PrecisionModel {
	if scale <= 0 {
		panic("geom: fixed precision model scale must be positive")
	}
	return PrecisionModel{kind: Fixed, scale: scale}
}

// Kind reports which rounding rule this model applies.
func (p PrecisionModel) Kind() PrecisionModelKind { return p.kind }

// Scale returns the model's scale factor. It is meaningful only for Fixed
// models; Floating and FloatingSingle models return 0.
func (p PrecisionModel) Scale() float64 { return p.scale }

// IsFloating reports whether this model applies no grid rounding at all
// (Floating or FloatingSingle).
func (p PrecisionModel) IsFloating() bool {
	return p.kind == Floating || p.kind == FloatingSingle
}

// MakePrecise rounds a single ordinate according to the model.
func (p PrecisionModel) MakePrecise(v float64) float64 {
	switch p.kind {
	case Floating:
		return v
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		return math.Round(v*p.scale) / p.scale
	}
	return v
}

// MakePreciseCoordinate rounds both ordinates of c, leaving z untouched
// (the spec's precision model is defined over (x,y); z, when present, is
// carried through unrounded).
func (p PrecisionModel) MakePreciseCoordinate(c Coordinate) Coordinate {
	return Coordinate{X: p.MakePrecise(c.X), Y: p.MakePrecise(c.Y), Z: c.Z}
}

// precisionRank orders models from least to most restrictive, so that
// Combine can pick the more restrictive of two models deterministically.
// Fixed models are ordered by decreasing grid spacing (larger scale, i.e.
// finer grid, is less restrictive than a coarser one, and any Fixed model
// is more restrictive than either Floating variant).
func (p PrecisionModel) precisionRank() (kindRank int, scale float64) {
	switch p.kind {
	case Floating:
		return 0, math.Inf(1)
	case FloatingSingle:
		return 1, math.Inf(1)
	default: // Fixed
		return 2, p.scale
	}
}

// Combine returns the more restrictive of p and o, the rule the spec
// requires an operation's output precision to follow when it has two
// geometry inputs with potentially different models.
func (p PrecisionModel) Combine(o PrecisionModel) PrecisionModel {
	pr, pscale := p.precisionRank()
	or, oscale := o.precisionRank()
	if pr != or {
		if pr > or {
			return p
		}
		return o
	}
	if p.kind != Fixed {
		return p
	}
	// Both Fixed: the coarser grid (smaller scale) is more restrictive.
	if pscale <= oscale {
		return p
	}
	return o
}
