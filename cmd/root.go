package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamsurvey/rba-georef/cmd/factors"
	"github.com/streamsurvey/rba-georef/cmd/georef"
	"github.com/streamsurvey/rba-georef/internal/buildinfo"
	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rba-georef",
		Short: "Georeference RBA stream survey data",
		Long: `rba-georef converts Rapid Bio-Assessment (RBA) stream survey records,
measured as cumulative distance along a transect, into real-world point
locations calibrated by surveyed sync points.

The workflow has a manual checkpoint in the middle:

  1. 'factors' computes per-segment distance adjustment factors and
     writes them to a CSV table.
  2. An operator reviews the table and may edit factor values.
  3. 'georef' places every survey record using the reviewed table and
     writes the georeferenced dataset.`,
		Version: buildinfo.VersionString(),
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		factors.Command(settings),
		georef.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Flags are parsed after the config file was loaded; honor a
		// --debug given on the command line.
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
