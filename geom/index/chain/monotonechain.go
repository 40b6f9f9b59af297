// Package chain implements monotone chains (spec.md §4.D): maximal runs
// of segments whose direction vectors stay within one quadrant, used to
// binary-search for overlapping segment pairs between two coordinate
// sequences in O(log n) envelope tests instead of the naive O(n^2).
//
// Grounded on the teacher's CrossingEdgeQuery / ShapeIndex idea of
// indexing a shape's edges for fast candidate-pair enumeration
// (s2/shapeindex.go), specialized to JTS's monotone-chain algorithm,
// which spec.md §4.D spells out precisely (quadrant-stable runs, binary
// search on envelope overlap).
package chain

import "github.com/geotopo-go/geotopo/geom"

// quadrant returns which of the four quadrants the directed vector from
// p0 to p1 lies in. Horizontal/vertical directions are assigned to the
// quadrant that keeps the run-building rule in MonotoneChainsOf simple
// and consistent (a zero-length segment has no quadrant and terminates a
// chain on its own).
func quadrant(p0, p1 geom.Coordinate) (q int, ok bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}
	switch {
	case dx >= 0 && dy >= 0:
		return 0, true
	case dx < 0 && dy >= 0:
		return 1, true
	case dx < 0 && dy < 0:
		return 2, true
	default:
		return 3, true
	}
}

// Chain is a maximal contiguous run of segments of pts, from index Start
// to index End inclusive, whose direction vectors all lie in the same
// quadrant. Segments within one chain pairwise do not intersect (spec.md
// §4.D), and the envelope of any contiguous sub-run equals the envelope
// of its endpoints.
type Chain struct {
	pts        []geom.Coordinate
	Start, End int
	env        geom.Envelope
}

// Points returns the coordinate sequence this chain indexes into.
func (c *Chain) Points() []geom.Coordinate { return c.pts }

// Envelope returns the bounding box of the whole chain.
func (c *Chain) Envelope() geom.Envelope { return c.env }

// NumSegments returns how many segments the chain spans.
func (c *Chain) NumSegments() int { return c.End - c.Start }

// SegmentEnvelope returns the envelope of the single segment at the given
// segment index within the chain's range [Start, End).
func (c *Chain) SegmentEnvelope(segIndex int) geom.Envelope {
	return geom.EnvelopeFromCoordinates([]geom.Coordinate{c.pts[segIndex], c.pts[segIndex+1]})
}

// ChainsOf splits pts into its maximal monotone chains.
func ChainsOf(pts []geom.Coordinate) []*Chain {
	if len(pts) < 2 {
		return nil
	}
	var chains []*Chain
	start := 0
	q, ok := quadrant(pts[0], pts[1])
	for i := 1; i < len(pts)-1; i++ {
		nq, nok := quadrant(pts[i], pts[i+1])
		if !ok || !nok || nq != q {
			chains = append(chains, newChain(pts, start, i))
			start = i
			q, ok = nq, nok
		}
	}
	chains = append(chains, newChain(pts, start, len(pts)-1))
	return chains
}

func newChain(pts []geom.Coordinate, start, end int) *Chain {
	return &Chain{
		pts:   pts,
		Start: start,
		End:   end,
		env:   geom.EnvelopeFromCoordinates(pts[start : end+1]),
	}
}

// OverlapIndices reports which segment-index pairs (one index into c,
// one into o) have overlapping envelopes, via recursive binary
// subdivision of both chains' index ranges — the O(log n) search spec.md
// §4.D calls for, rather than testing every segment of c against every
// segment of o.
func OverlapIndices(c, o *Chain) [][2]int {
	var out [][2]int
	overlap(c, c.Start, c.End, o, o.Start, o.End, &out)
	return out
}

func overlap(c *Chain, cStart, cEnd int, o *Chain, oStart, oEnd int, out *[][2]int) {
	if cStart >= cEnd || oStart >= oEnd {
		return
	}
	cEnv := rangeEnvelope(c, cStart, cEnd)
	oEnv := rangeEnvelope(o, oStart, oEnd)
	if !cEnv.Intersects(oEnv) {
		return
	}
	if cEnd-cStart == 1 && oEnd-oStart == 1 {
		*out = append(*out, [2]int{cStart, oStart})
		return
	}
	if cEnd-cStart == 1 {
		oMid := (oStart + oEnd) / 2
		overlap(c, cStart, cEnd, o, oStart, oMid, out)
		overlap(c, cStart, cEnd, o, oMid, oEnd, out)
		return
	}
	if oEnd-oStart == 1 {
		cMid := (cStart + cEnd) / 2
		overlap(c, cStart, cMid, o, oStart, oEnd, out)
		overlap(c, cMid, cEnd, o, oStart, oEnd, out)
		return
	}
	cMid := (cStart + cEnd) / 2
	oMid := (oStart + oEnd) / 2
	overlap(c, cStart, cMid, o, oStart, oMid, out)
	overlap(c, cStart, cMid, o, oMid, oEnd, out)
	overlap(c, cMid, cEnd, o, oStart, oMid, out)
	overlap(c, cMid, cEnd, o, oMid, oEnd, out)
}

// rangeEnvelope returns the envelope of the sub-run pts[start..end] of a
// chain. Every sub-run of a monotone chain is itself monotone, so its
// envelope is just the envelope of its two endpoints.
func rangeEnvelope(c *Chain, start, end int) geom.Envelope {
	return geom.EnvelopeFromCoordinates([]geom.Coordinate{c.pts[start], c.pts[end]})
}
