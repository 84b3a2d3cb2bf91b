package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/gridio/go-grid-editor/pkg/lib/logging"
)

var log = logging.Logger("grid-config")

const envPrefix = "GRID"

type Config struct {
	HistoryLimit     int
	DefaultRows      int
	DefaultColumns   int
	DefaultHeaderRow bool
	MaxImportRows    int
	MaxImportColumns int
	MultiSelect      bool
	LogLevel         string `envconfig:"LOG_LEVEL"`
}

var DefaultConfig = Config{
	HistoryLimit:     300,
	DefaultRows:      3,
	DefaultColumns:   3,
	DefaultHeaderRow: false,
	MaxImportRows:    1000,
	MaxImportColumns: 1000,
	MultiSelect:      false,
}

func WithHistoryLimit(limit int) func(*Config) {
	return func(c *Config) {
		c.HistoryLimit = limit
	}
}

func WithDefaultSize(rows, columns int) func(*Config) {
	return func(c *Config) {
		c.DefaultRows = rows
		c.DefaultColumns = columns
	}
}

func WithHeaderRow(enabled bool) func(*Config) {
	return func(c *Config) {
		c.DefaultHeaderRow = enabled
	}
}

func WithMultiSelect(enabled bool) func(*Config) {
	return func(c *Config) {
		c.MultiSelect = enabled
	}
}

// New builds a config from defaults, then GRID_* environment overrides,
// then explicit options, in that order.
func New(options ...func(*Config)) *Config {
	cfg := DefaultConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		log.Errorf("process env config: %s", err)
	}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}
	return &cfg
}
