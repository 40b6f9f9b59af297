// Package valid implements the validity engine of spec.md §4.G: the
// ordered checks that decide whether a geometry is topologically simple,
// and the typed ValidityError taxonomy of spec.md §7.
package valid

import (
	"fmt"

	"github.com/geotopo-go/geotopo/geom"
)

// ErrorKind enumerates the validity error taxonomy of spec.md §7.
type ErrorKind int

const (
	RepeatedPoint ErrorKind = iota
	HoleOutsideShell
	NestedHoles
	DisconnectedInterior
	SelfIntersection
	RingSelfIntersection
	NestedShells
	DuplicateRings
	TooFewPoints
	InvalidCoordinate
	RingNotClosed
)

func (k ErrorKind) String() string {
	switch k {
	case RepeatedPoint:
		return "RepeatedPoint"
	case HoleOutsideShell:
		return "HoleOutsideShell"
	case NestedHoles:
		return "NestedHoles"
	case DisconnectedInterior:
		return "DisconnectedInterior"
	case SelfIntersection:
		return "SelfIntersection"
	case RingSelfIntersection:
		return "RingSelfIntersection"
	case NestedShells:
		return "NestedShells"
	case DuplicateRings:
		return "DuplicateRings"
	case TooFewPoints:
		return "TooFewPoints"
	case InvalidCoordinate:
		return "InvalidCoordinate"
	case RingNotClosed:
		return "RingNotClosed"
	default:
		return "Unknown"
	}
}

// ValidityError reports why a geometry failed IsValid/CheckValidity: a
// typed kind plus a coordinate at or near the problem (spec.md §4.G/§7).
// Validity errors are returned, never raised, and the engine never
// mutates the geometry it inspects.
type ValidityError struct {
	Kind     ErrorKind
	Location geom.Coordinate
	Message  string
}

func (e *ValidityError) Error() string {
	return fmt.Sprintf("geom/valid: %s at (%v, %v): %s", e.Kind, e.Location.X, e.Location.Y, e.Message)
}

func newValidityError(kind ErrorKind, loc geom.Coordinate, msg string) *ValidityError {
	return &ValidityError{Kind: kind, Location: loc, Message: msg}
}

// TopologyError marks an invariant violated inside the relate/validity
// engine itself rather than a problem with the input geometry (spec.md
// §7's algorithmic-error class): a bug, or degenerate input not yet
// guarded against. Operations that detect one abort rather than return a
// partial result.
type TopologyError struct {
	Location geom.Coordinate
	Message  string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("geom/valid: topology invariant violated at (%v, %v): %s", e.Location.X, e.Location.Y, e.Message)
}
