package georef

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSegmentsFactor(t *testing.T) {
	// Sync points 100 survey units apart whose surveyed coordinates are
	// 150 units apart: the reported distance underestimates by a third.
	pts := []SyncPoint{
		{RecordID: "1", Distance: 0, X: 0, Y: 0},
		{RecordID: "7", Distance: 100, X: 0, Y: 150},
	}

	segments, err := BuildSegments("t-1", pts)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.InDelta(t, 1.5, seg.Factor, 0)
	assert.Equal(t, "1", seg.BeginID)
	assert.Equal(t, "7", seg.EndID)
	assert.InDelta(t, 150.0, seg.RealLength(), 1e-12)
	assert.InDelta(t, 100.0, seg.RawLength(), 0)
}

func TestBuildSegmentsOrderPreserved(t *testing.T) {
	pts := []SyncPoint{
		{RecordID: "a", Distance: 0, X: 0, Y: 0},
		{RecordID: "b", Distance: 50, X: 30, Y: 40},
		{RecordID: "c", Distance: 120, X: 30, Y: 110},
	}

	segments, err := BuildSegments("t-2", pts)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, "a", segments[0].BeginID)
	assert.Equal(t, "b", segments[0].EndID)
	assert.Equal(t, "b", segments[1].BeginID)
	assert.Equal(t, "c", segments[1].EndID)

	// 3-4-5 triangle: chord 50 over raw 50
	assert.InDelta(t, 1.0, segments[0].Factor, 1e-12)
	// chord 70 over raw 70
	assert.InDelta(t, 1.0, segments[1].Factor, 1e-12)
}

func TestBuildSegmentsIdempotent(t *testing.T) {
	pts := []SyncPoint{
		{RecordID: "a", Distance: 10, X: 3, Y: 9},
		{RecordID: "b", Distance: 85, X: 41, Y: 77},
	}

	first, err := BuildSegments("t-3", pts)
	require.NoError(t, err)
	second, err := BuildSegments("t-3", pts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("segments differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestBuildSegmentsDegenerate(t *testing.T) {
	// Two sync points at the same survey distance is a data-entry error.
	pts := []SyncPoint{
		{RecordID: "a", Distance: 50, X: 0, Y: 0},
		{RecordID: "c", Distance: 50, X: 10, Y: 10},
	}

	_, err := BuildSegments("t-4", pts)
	require.Error(t, err)

	var degenerate *DegenerateSegmentError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "t-4", degenerate.TransectID)
	assert.Equal(t, "a", degenerate.BeginID)
	assert.Equal(t, "c", degenerate.EndID)
	assert.InDelta(t, 50.0, degenerate.Distance, 0)
}

func TestBuildSegmentsTooFewSyncPoints(t *testing.T) {
	for _, pts := range [][]SyncPoint{
		nil,
		{{RecordID: "only", Distance: 0, X: 1, Y: 2}},
	} {
		_, err := BuildSegments("t-5", pts)
		var unresolved *UnresolvedTransectError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, "t-5", unresolved.TransectID)
		assert.Equal(t, len(pts), unresolved.SyncPoints)
	}
}

func TestBuildSegmentsFactorPositive(t *testing.T) {
	pts := []SyncPoint{
		{RecordID: "a", Distance: 0, X: 12, Y: -3},
		{RecordID: "b", Distance: 40, X: 20, Y: 5},
		{RecordID: "c", Distance: 95, X: -7, Y: 31},
	}

	segments, err := BuildSegments("t-6", pts)
	require.NoError(t, err)
	for _, seg := range segments {
		assert.Greater(t, seg.Factor, 0.0)
	}
}
