package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	historyLimit int
	historyState string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded queries",
	Long: `Display the most recent queries answered by solve and interactive,
newest first. Use --state to list every query that resolved to a given
packed state.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded queries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of queries to display")
	historyCmd.Flags().StringVar(&historyState, "state", "", "Only show queries for this packed state")

	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewQueryRepository(db)

	var queries []storage.QueryRecord
	if historyState != "" {
		queries, err = repo.FindByState(historyState)
	} else {
		queries, err = repo.List(historyLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list queries: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(queries) == 0 {
		fmt.Fprintln(out, "No queries recorded yet")
		fmt.Fprintln(out, "Answer one with: pocketcube solve \"U F R\"")
		return nil
	}

	fmt.Fprintf(out, "Recent queries (showing %d):\n\n", len(queries))
	writeQueryTable(out, queries)
	return nil
}

func writeQueryTable(w io.Writer, queries []storage.QueryRecord) {
	fmt.Fprintf(w, "%-36s  %-19s  %-5s  %-7s  %-5s  %s\n", "ID", "Created", "Kind", "Metric", "Depth", "Input")
	fmt.Fprintln(w, "------------------------------------  -------------------  -----  -------  -----  -----")

	for _, q := range queries {
		depth := "-"
		if q.Depth != nil {
			depth = fmt.Sprintf("%d", *q.Depth)
		}

		input := q.Input
		if len(input) > 40 {
			input = input[:37] + "..."
		}

		fmt.Fprintf(w, "%-36s  %-19s  %-5s  %-7s  %-5s  %s\n",
			q.QueryID,
			q.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			q.Kind,
			q.Metric,
			depth,
			input,
		)
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := storage.NewQueryRepository(db).Clear()
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d queries\n", n)
	return nil
}
