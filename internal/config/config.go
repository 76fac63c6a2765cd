// Package config manages the pocketcube configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	Metric   string `toml:"metric"`    // "quarter" or "half"
	History  bool   `toml:"history"`   // record answered queries
	DBPath   string `toml:"db_path"`   // query history database; empty for the default
	LogLevel string `toml:"log_level"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Metric:   types.QuarterTurn.String(),
		History:  true,
		LogLevel: "info",
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := types.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return nil
}

// ParsedMetric returns Metric as a types.Metric.
func (c Config) ParsedMetric() types.Metric {
	m, _ := types.ParseMetric(c.Metric)
	return m
}

// Level returns LogLevel as a log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pocketcube", "config.toml"), nil
}

// File manages a config file on disk.
type File struct {
	path   string
	config Config
}

// Load reads the config file at path and validates it. A missing file
// yields the defaults; keys absent from the file keep their default values.
func Load(path string) (*File, error) {
	f, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := f.config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Read reads the config file at path without validating the values, so a
// file holding a bad value can still be shown and repaired with Set.
func Read(path string) (*File, error) {
	f := &File{path: path, config: Default()}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &f.config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

// LoadDefault reads the config file at the default path.
func LoadDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes the config to disk, creating the parent directory.
func (f *File) Save() error {
	if err := f.config.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f.config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the config file path.
func (f *File) Path() string {
	return f.path
}

// Config returns the current configuration.
func (f *File) Config() Config {
	return f.config
}

// Set updates a single key and saves the file.
func (f *File) Set(key, value string) error {
	next := f.config
	switch key {
	case "metric":
		m, err := types.ParseMetric(value)
		if err != nil {
			return err
		}
		next.Metric = m.String()
	case "history":
		switch value {
		case "true", "on", "yes":
			next.History = true
		case "false", "off", "no":
			next.History = false
		default:
			return fmt.Errorf("invalid history value %q (use true or false)", value)
		}
	case "db_path":
		next.DBPath = value
	case "log_level":
		next.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	f.config = next
	return f.Save()
}
