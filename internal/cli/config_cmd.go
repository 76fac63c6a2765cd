package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration file",
	Long: `Show the configuration file and the effective settings.

Keys:
  metric     quarter or half
  history    true or false (record answered queries)
  db_path    query history database path
  log_level  debug, info, warn or error

Command-line flags override the file for a single run. A file holding an
invalid value is still shown, and can be fixed with "config set".`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupConfig,
	RunE:              runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the file.

Examples:
  pocketcube config set metric half
  pocketcube config set history false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	file, err := readConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := file.Config()

	fmt.Fprintln(out, titleStyle.Render("Config file"))
	fmt.Fprintf(out, "  %s\n\n", file.Path())
	writeConfig(out, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "\n  %s\n", errorStyle.Render(err.Error()))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Effective settings"))
	fmt.Fprintf(out, "  metric     = %s\n", settings.metric)
	fmt.Fprintf(out, "  history    = %t\n", settings.history)
	fmt.Fprintf(out, "  db_path    = %s\n", displayDBPath(settings.dbPath))
	fmt.Fprintf(out, "  log_level  = %s\n", settings.level)
	return nil
}

func writeConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "  metric     = %s\n", cfg.Metric)
	fmt.Fprintf(out, "  history    = %t\n", cfg.History)
	fmt.Fprintf(out, "  db_path    = %s\n", displayDBPath(cfg.DBPath))
	fmt.Fprintf(out, "  log_level  = %s\n", cfg.LogLevel)
}

func displayDBPath(path string) string {
	if path == "" {
		return "(default)"
	}
	return path
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	file, err := readConfig()
	if err != nil {
		return err
	}

	if err := file.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	loggerFromContext(cmd.Context()).Debug("config saved", "path", file.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], file.Path())
	return nil
}
