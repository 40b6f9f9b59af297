// Package relate implements the DE-9IM relate engine of spec.md §4.F:
// the IntersectionMatrix type, the Relate function that builds one from
// two geometries, and the boolean predicates derived from it.
package relate

import (
	"strings"

	"github.com/geotopo-go/geotopo/geom"
)

// IntersectionMatrix is the 3x3 Dimensionally Extended 9-Intersection
// Model matrix over {INTERIOR, BOUNDARY, EXTERIOR}^2 (spec.md §4.F):
// cell (i,j) holds the dimension of Ai ∩ Bj, or DimEmpty if that
// intersection is empty.
type IntersectionMatrix struct {
	dims [3][3]geom.Dimension
}

// NewIntersectionMatrix returns a matrix with every cell DimEmpty.
func NewIntersectionMatrix() IntersectionMatrix {
	m := IntersectionMatrix{}
	for i := range m.dims {
		for j := range m.dims[i] {
			m.dims[i][j] = geom.DimEmpty
		}
	}
	return m
}

func locIndex(loc geom.Location) int {
	switch loc {
	case geom.LocationInterior:
		return 0
	case geom.LocationBoundary:
		return 1
	case geom.LocationExterior:
		return 2
	default:
		panic("relate: location must be Interior, Boundary, or Exterior")
	}
}

// Get returns the dimension recorded at (locA, locB).
func (m IntersectionMatrix) Get(locA, locB geom.Location) geom.Dimension {
	return m.dims[locIndex(locA)][locIndex(locB)]
}

// Set records dim at (locA, locB), overwriting any previous value.
func (m *IntersectionMatrix) Set(locA, locB geom.Location, dim geom.Dimension) {
	m.dims[locIndex(locA)][locIndex(locB)] = dim
}

// SetAtLeast raises the cell at (locA, locB) to dim if it is currently
// lower (DimEmpty counts as lower than every real dimension); it never
// lowers a value an earlier, more specific step of the algorithm already
// recorded.
func (m *IntersectionMatrix) SetAtLeast(locA, locB geom.Location, dim geom.Dimension) {
	i, j := locIndex(locA), locIndex(locB)
	if m.dims[i][j] < dim {
		m.dims[i][j] = dim
	}
}

// SetAtLeastFromPattern raises every cell of m to at least the
// corresponding entry of a fixed 9-character pattern drawn from
// {'F','0','1','2'} in row-major (II,IB,IE,BI,BB,BE,EI,EB,EE) order,
// the "fixed 9-character patterns given in the original algorithm" of
// spec.md §4.F step 4.
func (m *IntersectionMatrix) SetAtLeastFromPattern(pattern string) {
	locs := [3]geom.Location{geom.LocationInterior, geom.LocationBoundary, geom.LocationExterior}
	k := 0
	for _, a := range locs {
		for _, b := range locs {
			if d, ok := patternDigit(pattern[k]); ok {
				m.SetAtLeast(a, b, d)
			}
			k++
		}
	}
}

func patternDigit(c byte) (geom.Dimension, bool) {
	switch c {
	case 'F':
		return geom.DimEmpty, true
	case '0':
		return geom.DimPoint, true
	case '1':
		return geom.DimCurve, true
	case '2':
		return geom.DimArea, true
	default:
		return geom.DimEmpty, false
	}
}

// String renders m as the standard 9-character DE-9IM string, e.g.
// "2FFF1FFF2".
func (m IntersectionMatrix) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.WriteString(m.dims[i][j].String())
		}
	}
	return b.String()
}

// DebugString renders m row-labelled (I/B/E), for test-failure messages.
func (m IntersectionMatrix) DebugString() string {
	rows := [3]string{"I", "B", "E"}
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(rows[i])
		b.WriteString(":")
		for j := 0; j < 3; j++ {
			b.WriteString(m.dims[i][j].String())
		}
	}
	return b.String()
}

// Matches reports whether m satisfies pattern, a 9-character test
// pattern over {'F','0','1','2','T','*'} in the same row-major order as
// String: 'T' matches any of {0,1,2}; '*' matches anything including
// DimEmpty; a digit or 'F' must match exactly (spec.md §6).
func (m IntersectionMatrix) Matches(pattern string) bool {
	if len(pattern) != 9 {
		return false
	}
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !matchesSymbol(pattern[k], m.dims[i][j]) {
				return false
			}
			k++
		}
	}
	return true
}

func matchesSymbol(sym byte, dim geom.Dimension) bool {
	switch sym {
	case '*':
		return true
	case 'T':
		return dim >= geom.DimPoint
	case 'F':
		return dim == geom.DimEmpty
	case '0':
		return dim == geom.DimPoint
	case '1':
		return dim == geom.DimCurve
	case '2':
		return dim == geom.DimArea
	default:
		return false
	}
}

// Transpose returns m with rows and columns swapped: the identity
// B.relate(A).cell(j,i) = A.relate(B).cell(i,j) that spec.md §8 requires
// relate to satisfy.
func (m IntersectionMatrix) Transpose() IntersectionMatrix {
	var t IntersectionMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.dims[j][i] = m.dims[i][j]
		}
	}
	return t
}

func isTrue(dim geom.Dimension) bool { return dim != geom.DimEmpty }

// IsIntersects reports whether A and B share any point at all.
func (m IntersectionMatrix) IsIntersects() bool { return !m.IsDisjoint() }

// IsDisjoint reports whether A and B share no point.
func (m IntersectionMatrix) IsDisjoint() bool {
	return m.dims[0][0] == geom.DimEmpty && m.dims[0][1] == geom.DimEmpty &&
		m.dims[1][0] == geom.DimEmpty && m.dims[1][1] == geom.DimEmpty
}

// IsTouches reports whether A and B touch but share no interior point,
// given the dimension of each geometry.
func (m IntersectionMatrix) IsTouches(dimA, dimB geom.Dimension) bool {
	if dimA > dimB {
		return m.Transpose().IsTouches(dimB, dimA)
	}
	switch {
	case dimA == geom.DimArea && dimB == geom.DimArea,
		dimA == geom.DimCurve && dimB == geom.DimCurve,
		dimA == geom.DimCurve && dimB == geom.DimArea,
		dimA == geom.DimPoint && dimB == geom.DimArea,
		dimA == geom.DimPoint && dimB == geom.DimCurve:
		return m.dims[0][0] == geom.DimEmpty &&
			(isTrue(m.dims[0][1]) || isTrue(m.dims[1][0]) || isTrue(m.dims[1][1]))
	default:
		return false
	}
}

// IsCrosses reports whether A and B cross: they share some, but not all,
// interior points, at a dimension lower than the higher of the two.
func (m IntersectionMatrix) IsCrosses(dimA, dimB geom.Dimension) bool {
	switch {
	case dimA == geom.DimPoint && dimB == geom.DimCurve,
		dimA == geom.DimPoint && dimB == geom.DimArea,
		dimA == geom.DimCurve && dimB == geom.DimArea:
		return isTrue(m.dims[0][0]) && isTrue(m.dims[0][2])
	case dimA == geom.DimCurve && dimB == geom.DimPoint,
		dimA == geom.DimArea && dimB == geom.DimPoint,
		dimA == geom.DimArea && dimB == geom.DimCurve:
		return isTrue(m.dims[0][0]) && isTrue(m.dims[2][0])
	case dimA == geom.DimCurve && dimB == geom.DimCurve:
		return m.dims[0][0] == geom.DimPoint
	default:
		return false
	}
}

// IsWithin reports whether A lies entirely within B.
func (m IntersectionMatrix) IsWithin() bool {
	return isTrue(m.dims[0][0]) && m.dims[0][2] == geom.DimEmpty && m.dims[1][2] == geom.DimEmpty
}

// IsContains reports whether A entirely contains B.
func (m IntersectionMatrix) IsContains() bool {
	return isTrue(m.dims[0][0]) && m.dims[2][0] == geom.DimEmpty && m.dims[2][1] == geom.DimEmpty
}

// IsOverlaps reports whether A and B overlap: same dimension, share some
// interior points, and neither contains the other.
func (m IntersectionMatrix) IsOverlaps(dimA, dimB geom.Dimension) bool {
	switch {
	case dimA == geom.DimPoint && dimB == geom.DimPoint,
		dimA == geom.DimArea && dimB == geom.DimArea:
		return isTrue(m.dims[0][0]) && isTrue(m.dims[0][2]) && isTrue(m.dims[2][0])
	case dimA == geom.DimCurve && dimB == geom.DimCurve:
		return m.dims[0][0] == geom.DimCurve && isTrue(m.dims[0][2]) && isTrue(m.dims[2][0])
	default:
		return false
	}
}

// IsEquals reports whether A and B occupy exactly the same point set.
func (m IntersectionMatrix) IsEquals(dimA, dimB geom.Dimension) bool {
	if dimA != dimB {
		return false
	}
	return m.dims[0][2] == geom.DimEmpty && m.dims[1][2] == geom.DimEmpty &&
		m.dims[2][0] == geom.DimEmpty && m.dims[2][1] == geom.DimEmpty
}

// IsCovers reports whether A covers B: every point of B is in A, and
// they share at least one point (Covers differs from Contains only in
// treating a boundary-only touch the same as containment; spec.md's
// SUPPLEMENTED FEATURES Covers/CoveredBy pair).
func (m IntersectionMatrix) IsCovers() bool {
	hasCommonPoint := isTrue(m.dims[0][0]) || isTrue(m.dims[0][1]) || isTrue(m.dims[1][0]) || isTrue(m.dims[1][1])
	if !hasCommonPoint {
		return false
	}
	return m.dims[2][0] == geom.DimEmpty && m.dims[2][1] == geom.DimEmpty
}
