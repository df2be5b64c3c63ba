// Package report renders the visual-QA artifacts for a georeferencing run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/streamsurvey/rba-georef/internal/errors"
)

// TransectPlot is the plottable result of georeferencing one transect.
type TransectPlot struct {
	TransectID string
	StreamName string
	Points     []PlotPoint
}

// PlotPoint is one placed survey record.
type PlotPoint struct {
	X            float64
	Y            float64
	Distance     float64
	Sync         bool // record was a sync point
	Extrapolated bool
}

// WritePlotFile renders the QA page to path.
func WritePlotFile(path, title, runID string, transects []TransectPlot) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Component("report").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()
	return WritePlot(f, title, runID, transects)
}

// WritePlot renders one scatter chart per transect onto a single HTML
// page. Interpolated records, extrapolated records and sync points get
// separate series so a reviewer can spot a miscalibrated segment at a
// glance: a correct transect shows sync points sitting on the record
// trace.
func WritePlot(w io.Writer, title, runID string, transects []TransectPlot) error {
	page := components.NewPage()
	page.PageTitle = title

	for i := range transects {
		tp := &transects[i]

		var interpolated, extrapolated, sync []opts.ScatterData
		minX, maxX, minY, maxY := bounds(tp.Points)
		for _, p := range tp.Points {
			d := opts.ScatterData{Value: []interface{}{p.X, p.Y, p.Distance}}
			switch {
			case p.Sync:
				sync = append(sync, d)
			case p.Extrapolated:
				extrapolated = append(extrapolated, d)
			default:
				interpolated = append(interpolated, d)
			}
		}

		subtitle := fmt.Sprintf("transect=%s points=%d run=%s", tp.TransectID, len(tp.Points), runID)
		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
			charts.WithTitleOpts(opts.Title{Title: chartTitle(tp), Subtitle: subtitle}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Min: minX, Max: maxX, Name: "X", NameLocation: "middle", NameGap: 25}),
			charts.WithYAxisOpts(opts.YAxis{Min: minY, Max: maxY, Name: "Y", NameLocation: "middle", NameGap: 30}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		)

		scatter.AddSeries("records", interpolated, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		if len(extrapolated) > 0 {
			scatter.AddSeries("extrapolated", extrapolated, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		}
		scatter.AddSeries("sync points", sync, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))

		page.AddCharts(scatter)
	}

	if err := page.Render(w); err != nil {
		return errors.Newf("rendering QA plot: %w", err).
			Component("report").
			Category(errors.CategoryReport).
			Build()
	}
	return nil
}

func chartTitle(tp *TransectPlot) string {
	if tp.StreamName != "" {
		return fmt.Sprintf("%s (%s)", tp.StreamName, tp.TransectID)
	}
	return tp.TransectID
}

// bounds returns padded axis limits so edge points stay visible.
func bounds(points []PlotPoint) (minX, maxX, minY, maxY float64) {
	if len(points) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	return minX - padX, maxX + padX, minY - padY, maxY + padY
}
