package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	exportQueryID string
	exportFormat  string
	exportOutput  string
	exportLast    bool
	exportLimit   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded queries",
	Long: `Export recorded queries and their routes in text or JSON format.

Without --id or --last the most recent queries are exported, up to --limit.

Examples:
  pocketcube export --last
  pocketcube export --id <query_id> --format json
  pocketcube export --limit 100 --format txt -o queries.txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportQueryID, "id", "", "Query ID to export")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last query")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 50, "Maximum number of queries to export")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	queries, err := selectExport(storage.NewQueryRepository(db))
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found")
	}

	output, err := formatExport(queries, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d queries to %s\n", len(queries), exportOutput)
	return nil
}

func selectExport(repo *storage.QueryRepository) ([]storage.QueryRecord, error) {
	var q *storage.QueryRecord
	var err error

	switch {
	case exportQueryID != "":
		q, err = repo.Get(exportQueryID)
	case exportLast:
		q, err = repo.GetLast()
	default:
		queries, err := repo.List(exportLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to list queries: %w", err)
		}
		return queries, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	if q == nil {
		return nil, nil
	}
	return []storage.QueryRecord{*q}, nil
}

// queryJSON is the exported form of a query.
type queryJSON struct {
	QueryID   string `json:"query_id"`
	CreatedAt string `json:"created_at"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Metric    string `json:"metric"`
	State     string `json:"state,omitempty"`
	Found     bool   `json:"found"`
	Depth     *int   `json:"depth,omitempty"`
	Route     string `json:"route,omitempty"`
	Solution  string `json:"solution,omitempty"`
	Error     string `json:"error,omitempty"`
}

func formatExport(queries []storage.QueryRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		var b strings.Builder
		for i, q := range queries {
			if i > 0 {
				b.WriteString("\n")
			}
			writeQueryText(&b, q)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case "json":
		out := make([]queryJSON, 0, len(queries))
		for _, q := range queries {
			out = append(out, queryJSON{
				QueryID:   q.QueryID,
				CreatedAt: q.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Kind:      q.Kind,
				Input:     q.Input,
				Metric:    q.Metric,
				State:     deref(q.State),
				Found:     q.Found,
				Depth:     q.Depth,
				Route:     deref(q.Route),
				Solution:  deref(q.Solution),
				Error:     deref(q.Error),
			})
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}

func writeQueryText(w io.Writer, q storage.QueryRecord) {
	fmt.Fprintf(w, "# %s (%s, %s-turn metric)\n", q.QueryID, q.Kind, q.Metric)
	fmt.Fprintf(w, "input:    %s\n", q.Input)
	if q.State != nil {
		fmt.Fprintf(w, "state:    %s\n", *q.State)
	}
	if !q.Found {
		fmt.Fprintf(w, "error:    %s\n", deref(q.Error))
		return
	}
	fmt.Fprintf(w, "depth:    %d\n", *q.Depth)
	fmt.Fprintf(w, "route:    %s\n", deref(q.Route))
	fmt.Fprintf(w, "solution: %s\n", deref(q.Solution))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
