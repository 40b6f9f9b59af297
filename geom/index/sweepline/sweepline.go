// Package sweepline implements a 1-D interval index over x-extents,
// producing overlapping-pair candidates via a sorted insert/delete event
// list (spec.md §4.D). The validity engine uses it for the shells-not-
// nested test of a MultiPolygon with more than 32 shells; the holes-not-
// nested test uses geom/index/quadtree instead (see DESIGN.md).
//
// The interval type itself is adapted from the teacher's r1.Interval (a
// plain Lo/Hi closed interval over ℝ) — the one piece of the teacher
// worth keeping almost verbatim, since a 1-D interval has no planar-vs-
// spherical distinction to rework. It is extended here with an item
// identity and moved from a standalone r1 package into this one, since
// its only role in this module is as a sweep-line event key.
package sweepline

import (
	"sort"

	"github.com/geotopo-go/geotopo/geom"
)

// Interval is a closed interval [Lo, Hi] on the real line tagged with an
// item. Lo > Hi marks an empty interval, which never overlaps anything.
type Interval struct {
	Lo, Hi float64
	Item   interface{}
}

// Overlaps reports whether i and o share at least one point.
func (i Interval) Overlaps(o Interval) bool {
	if i.Lo > i.Hi || o.Lo > o.Hi {
		return false
	}
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

type eventKind int

const (
	insertEvent eventKind = iota
	deleteEvent
)

type event struct {
	x    float64
	kind eventKind
	idx  int
}

// OverlappingPairs returns the index pairs (i, j), i < j, of intervals
// whose x-extents overlap, found via a sorted event sweep: events are
// ordered by x, with insert events before delete events at equal x so
// that an interval ending exactly where another begins is still reported
// as overlapping at that shared point.
func OverlappingPairs(intervals []Interval) [][2]int {
	return VisitOverlappingPairs(intervals, nil)
}

// VisitOverlappingPairs is the visitor form of OverlappingPairs: if visit
// is non-nil it is invoked once per overlapping pair in addition to the
// pair being appended to the returned slice. Passing a nil
// visit and ignoring the return value is never useful; at least one of
// the two must be used by the caller.
func VisitOverlappingPairs(intervals []Interval, visit func(i, j int)) [][2]int {
	n := len(intervals)
	events := make([]event, 0, 2*n)
	for i, iv := range intervals {
		if iv.Lo > iv.Hi {
			continue
		}
		events = append(events, event{x: iv.Lo, kind: insertEvent, idx: i})
		events = append(events, event{x: iv.Hi, kind: deleteEvent, idx: i})
	}
	sort.Slice(events, func(a, b int) bool {
		if events[a].x != events[b].x {
			return events[a].x < events[b].x
		}
		// Insert before delete at equal x, so coincident endpoints count
		// as an overlap.
		return events[a].kind < events[b].kind
	})

	var out [][2]int
	// active is kept as an insertion-ordered slice, not a map: map iteration
	// order is randomized in Go, which would make the order overlapping
	// pairs are visited in (and so the first-found location a caller like
	// checkRingsNotNestedIndexedSweep reports) non-deterministic.
	var active []int
	for _, e := range events {
		switch e.kind {
		case insertEvent:
			for _, j := range active {
				i, jj := e.idx, j
				if i > jj {
					i, jj = jj, i
				}
				out = append(out, [2]int{i, jj})
				if visit != nil {
					visit(i, jj)
				}
			}
			active = append(active, e.idx)
		case deleteEvent:
			for k, j := range active {
				if j == e.idx {
					active = append(active[:k], active[k+1:]...)
					break
				}
			}
		}
	}
	return out
}

// IntervalFromEnvelope returns the x-extent of env as a sweep-line
// Interval carrying item.
func IntervalFromEnvelope(env geom.Envelope, item interface{}) Interval {
	if env.IsEmpty() {
		return Interval{Lo: 1, Hi: 0, Item: item}
	}
	return Interval{Lo: env.MinX, Hi: env.MaxX, Item: item}
}
