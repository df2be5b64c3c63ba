package georef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsurvey/rba-georef/internal/survey"
)

func TestCollectSyncPoints(t *testing.T) {
	tr := &survey.Transect{
		ID: "t-1",
		Records: []*survey.Record{
			{TransectID: "t-1", RecordID: "1", Distance: 0, IsSync: true, HasXY: true, X: 1, Y: 2, Note: "mouth"},
			{TransectID: "t-1", RecordID: "2", Distance: 40},
			{TransectID: "t-1", RecordID: "3", Distance: 90, IsSync: true, HasXY: true, X: 8, Y: 9},
		},
	}

	pts, err := CollectSyncPoints(tr)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, "1", pts[0].RecordID)
	assert.Equal(t, "mouth", pts[0].Note)
	assert.Equal(t, "3", pts[1].RecordID)
	assert.Equal(t, 8.0, pts[1].X)
}

func TestCollectSyncPointsMissingCoordinate(t *testing.T) {
	tr := &survey.Transect{
		ID: "t-2",
		Records: []*survey.Record{
			{TransectID: "t-2", RecordID: "1", Distance: 0, IsSync: true, HasXY: true},
			{TransectID: "t-2", RecordID: "4", Line: 12, Distance: 60, IsSync: true, HasXY: false},
		},
	}

	_, err := CollectSyncPoints(tr)
	var missing *MissingCoordinateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "t-2", missing.TransectID)
	assert.Equal(t, "4", missing.RecordID)
	assert.Equal(t, 12, missing.Line)
}

func TestCollectSyncPointsOutOfOrder(t *testing.T) {
	tr := &survey.Transect{
		ID: "t-3",
		Records: []*survey.Record{
			{TransectID: "t-3", RecordID: "1", Distance: 100, IsSync: true, HasXY: true},
			{TransectID: "t-3", RecordID: "2", Distance: 40, IsSync: true, HasXY: true},
		},
	}

	_, err := CollectSyncPoints(tr)
	var outOfOrder *OutOfOrderSyncPointError
	require.ErrorAs(t, err, &outOfOrder)
	assert.Equal(t, "t-3", outOfOrder.TransectID)
	assert.Equal(t, "2", outOfOrder.RecordID)
	assert.InDelta(t, 40.0, outOfOrder.Distance, 0)
	assert.InDelta(t, 100.0, outOfOrder.PrevDistance, 0)
}

func TestCollectSyncPointsTiePassesThrough(t *testing.T) {
	// Equal distances are not "out of order" here; BuildSegments reports
	// them as a degenerate segment so the error names both records.
	tr := &survey.Transect{
		ID: "t-4",
		Records: []*survey.Record{
			{TransectID: "t-4", RecordID: "1", Distance: 50, IsSync: true, HasXY: true},
			{TransectID: "t-4", RecordID: "2", Distance: 50, IsSync: true, HasXY: true, X: 1},
		},
	}

	pts, err := CollectSyncPoints(tr)
	require.NoError(t, err)
	require.Len(t, pts, 2)

	_, err = BuildSegments(tr.ID, pts)
	var degenerate *DegenerateSegmentError
	require.ErrorAs(t, err, &degenerate)
}
