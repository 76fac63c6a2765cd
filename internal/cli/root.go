// Package cli implements the command-line interface for pocketcube.
//
// Logs go to stderr so answers, tables and exports on stdout stay clean
// for pipes. Index builds report the metric, state count and build time at
// info level. History problems are warnings and never fail a query. The
// interactive screen owns the terminal, so its background build logs
// nowhere.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath    string
	dbPath     string
	metricFlag string
	noHistory  bool
	verbose    bool

	// Effective settings after the config file and flags are merged.
	settings runSettings
)

// runSettings holds the configuration a command runs with.
type runSettings struct {
	configPath string
	metric     types.Metric
	history    bool
	dbPath     string
	level      log.Level
}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket cube state index and shortest-route solver",
	Long: `pocketcube - Enumerates every reachable configuration of a 2x2x2 cube
and answers shortest-route queries against that index.

The index is rebuilt on every run by a breadth-first walk from the solved
state, in either the quarter-turn or the half-turn metric. Query a packed
state number or a move sequence such as "U F' R2" to get the shortest
route to it and the sequence that solves it.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.pocketcube/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Query history database path (default: ~/.pocketcube/history.db)")
	rootCmd.PersistentFlags().StringVarP(&metricFlag, "metric", "m", "", "Exploration metric: quarter or half")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not record queries in the history")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// setup loads the config file, applies flag overrides and attaches a logger
// to the command context.
func setup(cmd *cobra.Command, args []string) error {
	file, err := loadConfig()
	if err != nil {
		return err
	}
	return applySettings(cmd, file.Path(), file.Config())
}

// setupConfig is setup for the config commands. An invalid file is reported
// but not fatal, so "config set" can repair it; the defaults stand in until
// then.
func setupConfig(cmd *cobra.Command, args []string) error {
	file, err := readConfig()
	if err != nil {
		return err
	}

	cfg := file.Config()
	invalid := cfg.Validate()
	if invalid != nil {
		cfg = config.Default()
	}
	if err := applySettings(cmd, file.Path(), cfg); err != nil {
		return err
	}
	if invalid != nil {
		loggerFromContext(cmd.Context()).Warn("config file has invalid values, using defaults", "err", invalid)
	}
	return nil
}

func applySettings(cmd *cobra.Command, path string, cfg config.Config) error {
	s, err := resolveSettings(cfg, metricFlag, dbPath, noHistory, verbose)
	if err != nil {
		return err
	}
	s.configPath = path
	settings = s

	logger := newLogger(os.Stderr, s.level)
	cmd.SetContext(withLogger(cmd.Context(), logger))
	logger.Debug("settings loaded",
		"config", s.configPath,
		"metric", s.metric,
		"history", s.history)
	return nil
}

func loadConfig() (*config.File, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	return config.LoadDefault()
}

func readConfig() (*config.File, error) {
	path := cfgPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.Read(path)
}

// resolveSettings merges command-line overrides into the file configuration.
// Empty strings and false flags leave the file values in place.
func resolveSettings(cfg config.Config, metric, db string, disableHistory, debug bool) (runSettings, error) {
	s := runSettings{
		metric:  cfg.ParsedMetric(),
		history: cfg.History && !disableHistory,
		dbPath:  cfg.DBPath,
		level:   cfg.Level(),
	}

	if metric != "" {
		m, err := types.ParseMetric(metric)
		if err != nil {
			return s, err
		}
		s.metric = m
	}
	if db != "" {
		s.dbPath = db
	}
	if debug {
		s.level = log.DebugLevel
	}

	return s, nil
}
