package conf

import (
	"fmt"

	"github.com/streamsurvey/rba-georef/internal/errors"
)

// ValidateSettings checks the loaded settings for values that would make a
// run fail in confusing ways later.
func ValidateSettings(settings *Settings) error {
	var errs []error

	cols := &settings.Input.Columns
	required := map[string]string{
		"input.columns.transectid": cols.TransectID,
		"input.columns.distance":   cols.Distance,
		"input.columns.x":          cols.X,
		"input.columns.y":          cols.Y,
	}
	for key, value := range required {
		if value == "" {
			errs = append(errs, errors.Newf("%s must not be empty", key).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build())
		}
	}

	if settings.Output.SRID <= 0 {
		errs = append(errs, errors.Newf("output.srid must be a positive EPSG code, got %d", settings.Output.SRID).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build())
	}

	if settings.Output.SQLite.Enabled && settings.Output.SQLite.Path == "" {
		errs = append(errs, errors.Newf("output.sqlite.path must be set when SQLite output is enabled").
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build())
	}

	if settings.Output.Plot.Enabled && settings.Output.Plot.Path == "" {
		errs = append(errs, errors.Newf("output.plot.path must be set when plot output is enabled").
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
