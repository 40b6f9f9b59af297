package geom

import "math"

// Envelope is an axis-aligned bounding box [minX,maxX] x [minY,maxY], or
// the empty box. The zero value is not empty (it is the degenerate box at
// the origin); use EmptyEnvelope to obtain the empty box.
type Envelope struct {
	MinX, MaxX, MinY, MaxY float64
	empty                  bool
}

// EmptyEnvelope returns the empty envelope. An empty envelope never
// intersects anything, including another empty envelope.
func EmptyEnvelope() Envelope {
	return Envelope{empty: true}
}

// EnvelopeFromCoordinate returns the degenerate envelope containing exactly c.
func EnvelopeFromCoordinate(c Coordinate) Envelope {
	return Envelope{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
}

// EnvelopeFromCoordinates returns the envelope bounding all of cs. The
// result is empty if cs is empty.
func EnvelopeFromCoordinates(cs []Coordinate) Envelope {
	if len(cs) == 0 {
		return EmptyEnvelope()
	}
	e := EnvelopeFromCoordinate(cs[0])
	for _, c := range cs[1:] {
		e = e.ExpandToInclude(EnvelopeFromCoordinate(c))
	}
	return e
}

// IsEmpty reports whether the envelope is the empty box.
func (e Envelope) IsEmpty() bool { return e.empty }

// Width returns MaxX - MinX, or a negative value for the empty envelope.
func (e Envelope) Width() float64 {
	if e.empty {
		return -1
	}
	return e.MaxX - e.MinX
}

// Height returns MaxY - MinY, or a negative value for the empty envelope.
func (e Envelope) Height() float64 {
	if e.empty {
		return -1
	}
	return e.MaxY - e.MinY
}

// Intersects reports whether e and o share at least one point. An empty
// envelope never intersects anything.
func (e Envelope) Intersects(o Envelope) bool {
	if e.empty || o.empty {
		return false
	}
	return !(o.MinX > e.MaxX || o.MaxX < e.MinX || o.MinY > e.MaxY || o.MaxY < e.MinY)
}

// IntersectsCoordinate reports whether c lies within e (boundary-inclusive).
func (e Envelope) IntersectsCoordinate(c Coordinate) bool {
	if e.empty {
		return false
	}
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// Contains reports whether o is entirely contained within e (boundary-
// inclusive on both sides).
func (e Envelope) Contains(o Envelope) bool {
	if e.empty {
		return false
	}
	if o.empty {
		return true
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX && o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// ContainsStrict reports whether o is strictly inside e, i.e. contained
// but not equal to e along any edge. Used by ring-nesting tests that must
// distinguish "strictly contains" from "touches".
func (e Envelope) ContainsStrict(o Envelope) bool {
	if e.empty || o.empty {
		return false
	}
	return o.MinX > e.MinX && o.MaxX < e.MaxX && o.MinY > e.MinY && o.MaxY < e.MaxY
}

// ExpandToInclude returns the smallest envelope containing both e and o.
func (e Envelope) ExpandToInclude(o Envelope) Envelope {
	if o.empty {
		return e
	}
	if e.empty {
		return o
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX),
		MaxX: math.Max(e.MaxX, o.MaxX),
		MinY: math.Min(e.MinY, o.MinY),
		MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// Expanded returns e expanded by margin on every side. A negative margin
// shrinks the envelope; shrinking past zero width/height yields an empty
// envelope only if the margin is applied to an already-empty envelope.
func (e Envelope) Expanded(margin float64) Envelope {
	if e.empty {
		return e
	}
	return Envelope{
		MinX: e.MinX - margin, MaxX: e.MaxX + margin,
		MinY: e.MinY - margin, MaxY: e.MaxY + margin,
	}
}

// Area returns the envelope's area, 0 for degenerate envelopes, and a
// negative value for the empty envelope.
func (e Envelope) Area() float64 {
	if e.empty {
		return -1
	}
	return e.Width() * e.Height()
}
