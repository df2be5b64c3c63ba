package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsurvey/rba-georef/internal/conf"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	settings := &conf.Settings{}
	settings.Output.SQLite.Enabled = true
	settings.Output.SQLite.Path = filepath.Join(t.TempDir(), "points.db")

	store, ok := New(settings).(*SQLiteStore)
	require.True(t, ok)
	require.NoError(t, store.Open())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testPoints(runID string) []SurveyPoint {
	return []SurveyPoint{
		{RunID: runID, TransectID: "42", RecordID: "1", StreamName: "Elk Cr", SurveyDist: 0, AdjustedDist: 0, X: 402310.25, Y: 4871022.5, SRID: 4326},
		{RunID: runID, TransectID: "42", RecordID: "2", StreamName: "Elk Cr", SurveyDist: 55, AdjustedDist: 82.5, X: 402260, Y: 4871090, SRID: 4326},
		{RunID: runID, TransectID: "7", RecordID: "1", StreamName: "Doe Cr", SurveyDist: 0, AdjustedDist: -15, X: 401000, Y: 4870000, SRID: 4326, Extrapolated: true},
	}
}

func TestNewReturnsNilWhenDisabled(t *testing.T) {
	settings := &conf.Settings{}
	assert.Nil(t, New(settings))
}

func TestSavePointsAndGetByRun(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SavePoints(testPoints("run-a")))
	require.NoError(t, store.SavePoints(testPoints("run-b")[:1]))

	points, err := store.GetPointsByRun("run-a")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "42", points[0].TransectID)
	assert.Equal(t, "1", points[0].RecordID)
	assert.InDelta(t, 402310.25, points[0].X, 0)
	assert.Equal(t, 4326, points[0].SRID)
	assert.True(t, points[2].Extrapolated)
	assert.False(t, points[0].CreatedAt.IsZero())
}

func TestGetPointsByTransect(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SavePoints(testPoints("run-a")))

	points, err := store.GetPointsByTransect("run-a", "42")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "1", points[0].RecordID)
	assert.Equal(t, "2", points[1].RecordID)
}

func TestDeleteRunLeavesOtherRuns(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SavePoints(testPoints("run-a")))
	require.NoError(t, store.SavePoints(testPoints("run-b")))

	require.NoError(t, store.DeleteRun("run-a"))

	gone, err := store.GetPointsByRun("run-a")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := store.GetPointsByRun("run-b")
	require.NoError(t, err)
	assert.Len(t, kept, 3)
}

func TestSavePointsEmptyBatch(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.SavePoints(nil))
}

func TestSavePointsWithoutOpen(t *testing.T) {
	store := &SQLiteStore{Settings: &conf.Settings{}}
	err := store.SavePoints(testPoints("run-a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}
