package analysis

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/datastore"
	"github.com/streamsurvey/rba-georef/internal/errors"
	"github.com/streamsurvey/rba-georef/internal/georef"
	"github.com/streamsurvey/rba-georef/internal/report"
	"github.com/streamsurvey/rba-georef/internal/survey"
)

// Columns appended to the survey table on output.
var geoColumns = []string{"X", "Y", "Adjusted_Dist"}

// RunGeoref implements the third workflow step: read the survey table and
// the (possibly operator-edited) factor table, place every record, and
// write the georeferenced dataset. The factor table is authoritative;
// nothing is recomputed from sync points here.
//
// Every input record is written exactly once. Records on transects that
// cannot be resolved keep blank coordinate columns and the failure is
// reported; other transects are unaffected.
func RunGeoref(settings *conf.Settings, surveyPath, factorsPath, outputPath, format string) error {
	log := serviceLogger()
	runID := uuid.New().String()

	table, err := survey.ReadFile(surveyPath, &settings.Input.Columns)
	if err != nil {
		return err
	}
	factors, err := georef.ReadFactorTableFile(factorsPath)
	if err != nil {
		return err
	}

	segmentsByTransect := make(map[string][]georef.Segment, len(factors))
	for i := range factors {
		segmentsByTransect[factors[i].TransectID] = factors[i].Segments
	}

	positions := make(map[*survey.Record]georef.Position)
	var failures []error
	var placed, extrapolated int
	for _, tr := range table.Transects() {
		segments, ok := segmentsByTransect[tr.ID]
		if !ok {
			err := &georef.UnresolvedTransectError{TransectID: tr.ID}
			log.Error("transect missing from factor table", "transect_id", tr.ID)
			failures = append(failures, err)
			continue
		}
		log.Info("georeferencing transect",
			"transect_id", tr.ID,
			"records", len(tr.Records),
			"segments", len(segments))
		for _, rec := range tr.Records {
			pos, err := georef.Interpolate(tr.ID, segments, rec.Distance)
			if err != nil {
				failures = append(failures, err)
				break
			}
			positions[rec] = pos
			placed++
			if pos.Extrapolated {
				extrapolated++
			}
		}
	}

	if err := writeOutput(outputPath, format, table, positions); err != nil {
		return err
	}

	if settings.Output.SQLite.Enabled {
		if err := savePoints(settings, runID, table, positions); err != nil {
			return err
		}
	}

	if settings.Output.Plot.Enabled {
		plots := collectPlots(table, positions)
		if err := report.WritePlotFile(settings.Output.Plot.Path, settings.Output.Plot.Title, runID, plots); err != nil {
			return err
		}
		log.Info("QA plot written", "file", settings.Output.Plot.Path)
	}

	log.Info("georeferencing run complete",
		"run_id", runID,
		"file", outputPath,
		"records_placed", placed,
		"records_extrapolated", extrapolated,
		"failed_transects", len(failures),
		"skipped_rows", table.Skipped)

	if len(failures) > 0 {
		return errors.Newf("%d transect(s) could not be georeferenced: %w",
			len(failures), errors.Join(failures...)).
			Component("analysis").
			Category(errors.CategoryProcessing).
			Context("run_id", runID).
			Build()
	}
	return nil
}

// writeOutput writes the georeferenced dataset in the requested format.
func writeOutput(path, format string, table *survey.Table, positions map[*survey.Record]georef.Position) error {
	extra := func(rec *survey.Record) []string {
		pos, ok := positions[rec]
		if !ok {
			return nil
		}
		return []string{
			formatCoord(pos.X),
			formatCoord(pos.Y),
			formatCoord(pos.AdjustedDist),
		}
	}

	switch format {
	case "", "csv":
		return survey.WriteGeoCSVFile(path, table, geoColumns, extra)
	case "table":
		return writeGeoTableFile(path, table, positions)
	default:
		return errors.Newf("unsupported output format %q", format).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}
}

// writeGeoTableFile writes a tab-separated digest of the placed records,
// for eyeballing in a terminal rather than feeding a GIS.
func writeGeoTableFile(path string, table *survey.Table, positions map[*survey.Record]georef.Position) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.New(err).
				Component("analysis").
				Category(errors.CategoryFileIO).
				FileContext(path).
				Build()
		}
		defer f.Close()
		w = f
	}

	header := "Transect\tRecord\tSurvey Dist\tAdjusted Dist\tX\tY\n"
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range table.Records {
		pos, ok := positions[rec]
		var line string
		if ok {
			line = fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.TransectID, rec.RecordID, formatCoord(rec.Distance),
				formatCoord(pos.AdjustedDist), formatCoord(pos.X), formatCoord(pos.Y))
		} else {
			line = fmt.Sprintf("%s\t%s\t%s\t\t\t\n",
				rec.TransectID, rec.RecordID, formatCoord(rec.Distance))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// savePoints persists the placed records to the configured feature table.
func savePoints(settings *conf.Settings, runID string, table *survey.Table, positions map[*survey.Record]georef.Position) error {
	store := datastore.New(settings)
	if store == nil {
		return nil
	}
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()

	points := make([]datastore.SurveyPoint, 0, len(positions))
	for _, rec := range table.Records {
		pos, ok := positions[rec]
		if !ok {
			continue
		}
		points = append(points, datastore.SurveyPoint{
			RunID:        runID,
			TransectID:   rec.TransectID,
			RecordID:     rec.RecordID,
			StreamName:   rec.StreamName,
			TribTo:       rec.TribTo,
			SurveyDist:   rec.Distance,
			AdjustedDist: pos.AdjustedDist,
			X:            pos.X,
			Y:            pos.Y,
			SRID:         settings.Output.SRID,
			Extrapolated: pos.Extrapolated,
			Note:         rec.Note,
			Comment:      rec.Comment,
		})
	}
	if err := store.SavePoints(points); err != nil {
		return err
	}
	serviceLogger().Info("feature table updated",
		"path", settings.Output.SQLite.Path,
		"run_id", runID,
		"points", len(points))
	return nil
}

// collectPlots groups the placed records per transect for the QA page.
func collectPlots(table *survey.Table, positions map[*survey.Record]georef.Position) []report.TransectPlot {
	var plots []report.TransectPlot
	for _, tr := range table.Transects() {
		tp := report.TransectPlot{TransectID: tr.ID}
		for _, rec := range tr.Records {
			pos, ok := positions[rec]
			if !ok {
				continue
			}
			if tp.StreamName == "" {
				tp.StreamName = rec.StreamName
			}
			tp.Points = append(tp.Points, report.PlotPoint{
				X:            pos.X,
				Y:            pos.Y,
				Distance:     rec.Distance,
				Sync:         rec.IsSync,
				Extrapolated: pos.Extrapolated,
			})
		}
		if len(tp.Points) > 0 {
			plots = append(plots, tp)
		}
	}
	return plots
}

// formatCoord renders a value with full round-trip precision and without
// scientific notation surprises in spreadsheets.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Guard against -0 from direction math.
	if s == "-0" {
		return "0"
	}
	return s
}
