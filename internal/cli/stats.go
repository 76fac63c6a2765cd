package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count states at each distance from solved",
	Long: `Walk the whole configuration space breadth-first from the solved state
and print how many states are first reached at each depth.

The deepest level is God's number for the chosen metric: 14 in the
quarter-turn metric and 11 in the half-turn metric.

Examples:
  pocketcube stats
  pocketcube stats --metric half
  pocketcube stats --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the summary as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	logger.Debug("counting states", "metric", settings.metric)
	timer := startBuild(logger)
	counts := pocketcube.Histogram(settings.metric)
	summary := analysis.SummarizeDepths(settings.metric, counts)
	timer.finish("depths counted", summary.TotalStates)

	if statsJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, renderDepths(summary))
	return nil
}
