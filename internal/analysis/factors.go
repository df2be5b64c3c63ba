// Package analysis wires the survey I/O, factor calculation and position
// interpolation into the two batch operations the CLI exposes.
package analysis

import (
	"log/slog"

	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/errors"
	"github.com/streamsurvey/rba-georef/internal/georef"
	"github.com/streamsurvey/rba-georef/internal/logging"
	"github.com/streamsurvey/rba-georef/internal/survey"
)

// RunFactors implements the first workflow step: read the survey table,
// compute per-segment adjustment factors for every transect, and write
// the factor table for operator review. Transects that fail validation
// are reported and skipped; the rest still produce factors.
func RunFactors(settings *conf.Settings, surveyPath, factorsPath string) error {
	log := serviceLogger()

	table, err := survey.ReadFile(surveyPath, &settings.Input.Columns)
	if err != nil {
		return err
	}

	transects := table.Transects()
	factors := make([]georef.TransectFactors, 0, len(transects))
	var failures []error
	for _, tr := range transects {
		segments, err := transectSegments(tr)
		if err != nil {
			log.Error("skipping transect", "transect_id", tr.ID, "error", err)
			failures = append(failures, err)
			continue
		}
		tf := georef.TransectFactors{
			TransectID: tr.ID,
			Segments:   segments,
		}
		if len(tr.Records) > 0 {
			tf.StreamName = tr.Records[0].StreamName
			tf.TribTo = tr.Records[0].TribTo
		}
		factors = append(factors, tf)
	}

	if err := georef.WriteFactorTableFile(factorsPath, factors); err != nil {
		return err
	}

	log.Info("adjustment factors written",
		"file", factorsPath,
		"transects", len(factors),
		"failed_transects", len(failures),
		"skipped_rows", table.Skipped)

	if len(failures) > 0 {
		return errors.Newf("%d of %d transects could not be processed: %w",
			len(failures), len(transects), errors.Join(failures...)).
			Component("analysis").
			Category(errors.CategoryProcessing).
			Build()
	}
	return nil
}

// serviceLogger returns the analysis service logger, falling back to the
// process default when logging was never initialized (tests).
func serviceLogger() *slog.Logger {
	if log := logging.ForService("analysis"); log != nil {
		return log
	}
	return slog.Default()
}

// transectSegments validates one transect's sync points and builds its
// segment list.
func transectSegments(tr *survey.Transect) ([]georef.Segment, error) {
	pts, err := georef.CollectSyncPoints(tr)
	if err != nil {
		return nil, err
	}
	return georef.BuildSegments(tr.ID, pts)
}
