package survey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGeoCSVPreservesColumnsAndAppends(t *testing.T) {
	input := strings.Join([]string{
		"LocationID,Pool_num,Survey_Cum_Dist,X_coord,Y_coord,Extra_Col",
		"42,1,0,5,5,keep me",
		"42,2,55,,,and me",
	}, "\n")
	table, err := Read(strings.NewReader(input), defaultColumns())
	require.NoError(t, err)

	var buf bytes.Buffer
	extra := func(rec *Record) []string {
		if rec.RecordID == "2" {
			return nil // unplaced record
		}
		return []string{"1.5", "2.5", "3.5"}
	}
	require.NoError(t, WriteGeoCSV(&buf, table, []string{"X", "Y", "Adjusted_Dist"}, extra))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LocationID,Pool_num,Survey_Cum_Dist,X_coord,Y_coord,Extra_Col,X,Y,Adjusted_Dist", lines[0])
	assert.Equal(t, "42,1,0,5,5,keep me,1.5,2.5,3.5", lines[1])
	// Unplaced records keep their row with blank computed columns.
	assert.Equal(t, "42,2,55,,,and me,,,", lines[2])
}

func TestWriteGeoCSVWritesEveryRecordOnce(t *testing.T) {
	input := strings.Join([]string{
		"LocationID,Pool_num,Survey_Cum_Dist,X_coord,Y_coord",
		"a,1,0,0,0",
		"b,1,10,1,1",
		"a,2,20,2,2",
	}, "\n")
	table, err := Read(strings.NewReader(input), defaultColumns())
	require.NoError(t, err)

	var buf bytes.Buffer
	calls := 0
	require.NoError(t, WriteGeoCSV(&buf, table, []string{"X"}, func(*Record) []string {
		calls++
		return []string{"0"}
	}))

	assert.Equal(t, 3, calls)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
}
