package factors

import (
	"github.com/spf13/cobra"

	"github.com/streamsurvey/rba-georef/internal/analysis"
	"github.com/streamsurvey/rba-georef/internal/conf"
)

// Command creates the factors command, the first step of the workflow:
// compute distance adjustment factors and write them out for review.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors [survey.csv] [factors.csv]",
		Short: "Compute distance adjustment factors for review",
		Long: `Reads the survey table, derives one segment per consecutive pair of
sync points on each transect, and writes a CSV table with one adjustment
factor per segment. Edit factor values in place before running 'georef';
the edited table is used as-is.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analysis.RunFactors(settings, args[0], args[1])
		},
	}

	return cmd
}
