package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransects() []TransectPlot {
	return []TransectPlot{
		{
			TransectID: "42",
			StreamName: "Elk Cr",
			Points: []PlotPoint{
				{X: 0, Y: 0, Distance: 0, Sync: true},
				{X: 0, Y: -30, Distance: -20, Extrapolated: true},
				{X: 0, Y: 75, Distance: 50},
				{X: 0, Y: 150, Distance: 100, Sync: true},
			},
		},
		{
			TransectID: "7",
			Points: []PlotPoint{
				{X: 5, Y: 5, Distance: 0, Sync: true},
				{X: 6, Y: 9, Distance: 5, Sync: true},
			},
		},
	}
}

func TestWritePlotRendersAllTransects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlot(&buf, "Survey QA", "run-1", testTransects()))

	html := buf.String()
	assert.Contains(t, html, "Survey QA")
	assert.Contains(t, html, "Elk Cr (42)")  // named stream gets a combined title
	assert.Contains(t, html, "transect=7")   // unnamed stream falls back to the ID
	assert.Contains(t, html, "run=run-1")
	assert.Contains(t, html, "sync points")
	assert.Contains(t, html, "extrapolated")
}

func TestWritePlotOmitsEmptyExtrapolatedSeries(t *testing.T) {
	transects := testTransects()[1:] // no extrapolated points

	var buf bytes.Buffer
	require.NoError(t, WritePlot(&buf, "QA", "run-2", transects))

	html := buf.String()
	assert.Contains(t, html, "sync points")
	assert.NotContains(t, html, "extrapolated")
}

func TestBoundsPadding(t *testing.T) {
	points := []PlotPoint{{X: 0, Y: 10}, {X: 100, Y: 20}}
	minX, maxX, minY, maxY := bounds(points)
	assert.InDelta(t, -5, minX, 1e-9)
	assert.InDelta(t, 105, maxX, 1e-9)
	assert.InDelta(t, 9.5, minY, 1e-9)
	assert.InDelta(t, 20.5, maxY, 1e-9)
}

func TestBoundsDegenerateExtent(t *testing.T) {
	// A transect running straight north has zero X extent; the axis still
	// needs a visible window.
	points := []PlotPoint{{X: 50, Y: 0}, {X: 50, Y: 100}}
	minX, maxX, _, _ := bounds(points)
	assert.Less(t, minX, 50.0)
	assert.Greater(t, maxX, 50.0)
}

func TestBoundsNoPoints(t *testing.T) {
	minX, maxX, minY, maxY := bounds(nil)
	assert.Less(t, minX, maxX)
	assert.Less(t, minY, maxY)
}
