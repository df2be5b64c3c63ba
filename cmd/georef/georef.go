package georef

import (
	"github.com/spf13/cobra"

	"github.com/streamsurvey/rba-georef/internal/analysis"
	"github.com/streamsurvey/rba-georef/internal/conf"
)

// Command creates the georef command, the final step of the workflow:
// place every survey record using the reviewed factor table.
func Command(settings *conf.Settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "georef [survey.csv] [factors.csv] [output.csv]",
		Short: "Georeference survey records using a factor table",
		Long: `Reads the survey table and the reviewed factor table, computes an X/Y
position for every record by interpolating between sync points (or
extrapolating past the first or last one), and writes the georeferenced
dataset with all original columns preserved.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analysis.RunGeoref(settings, args[0], args[1], args[2], format)
		},
	}

	setupFlags(cmd, settings, &format)

	return cmd
}

// setupFlags configures flags specific to the georef command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "csv", "Output format: csv, table")
	cmd.Flags().BoolVar(&settings.Output.SQLite.Enabled, "sqlite", settings.Output.SQLite.Enabled, "Also write points to the SQLite feature table")
	cmd.Flags().StringVar(&settings.Output.SQLite.Path, "sqlite-path", settings.Output.SQLite.Path, "Path of the SQLite feature table")
	cmd.Flags().BoolVar(&settings.Output.Plot.Enabled, "plot", settings.Output.Plot.Enabled, "Also write an HTML QA plot")
	cmd.Flags().StringVar(&settings.Output.Plot.Path, "plot-path", settings.Output.Plot.Path, "Path of the HTML QA plot")
}
