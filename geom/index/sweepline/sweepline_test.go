package sweepline_test

import (
	"testing"

	"github.com/geotopo-go/geotopo/geom"
	"github.com/geotopo-go/geotopo/geom/index/sweepline"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	t.Parallel()
	a := sweepline.Interval{Lo: 0, Hi: 4}
	b := sweepline.Interval{Lo: 3, Hi: 6}
	c := sweepline.Interval{Lo: 10, Hi: 12}
	require.True(t, a.Overlaps(b))
	require.False(t, a.Overlaps(c))
}

func TestInterval_EmptyNeverOverlaps(t *testing.T) {
	t.Parallel()
	empty := sweepline.Interval{Lo: 5, Hi: 1}
	other := sweepline.Interval{Lo: 0, Hi: 10}
	require.False(t, empty.Overlaps(other))
}

func TestOverlappingPairs(t *testing.T) {
	t.Parallel()
	intervals := []sweepline.Interval{
		{Lo: 0, Hi: 4},  // 0
		{Lo: 3, Hi: 6},  // 1, overlaps 0
		{Lo: 10, Hi: 12}, // 2, isolated
	}
	pairs := sweepline.OverlappingPairs(intervals)
	require.Equal(t, [][2]int{{0, 1}}, pairs)
}

func TestVisitOverlappingPairs(t *testing.T) {
	t.Parallel()
	intervals := []sweepline.Interval{
		{Lo: 0, Hi: 4},
		{Lo: 3, Hi: 6},
	}
	var visited [][2]int
	sweepline.VisitOverlappingPairs(intervals, func(i, j int) {
		visited = append(visited, [2]int{i, j})
	})
	require.Equal(t, [][2]int{{0, 1}}, visited)
}

func TestIntervalFromEnvelope(t *testing.T) {
	t.Parallel()
	env := geom.EnvelopeFromCoordinates([]geom.Coordinate{
		geom.NewCoordinate(2, 5), geom.NewCoordinate(8, 9),
	})
	iv := sweepline.IntervalFromEnvelope(env, "x")
	require.Equal(t, 2.0, iv.Lo)
	require.Equal(t, 8.0, iv.Hi)
	require.Equal(t, "x", iv.Item)
}

func TestIntervalFromEnvelope_Empty(t *testing.T) {
	t.Parallel()
	iv := sweepline.IntervalFromEnvelope(geom.EmptyEnvelope(), "y")
	require.True(t, iv.Lo > iv.Hi)
}
