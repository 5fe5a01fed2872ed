// Package config manages neox configuration.
//
// Configuration sources, in order of precedence:
//  1. Command line flags
//  2. Environment variables (NEOX_* prefix)
//  3. Project config (./config.toml, searched upward)
//  4. User config (~/.neox/config.toml)
//  5. System config (/etc/neox/config.toml)
//  6. Default values
package config

import (
	"github.com/orbitwatch/neox/errors"
)

// Config is the neox configuration tree.
type Config struct {
	Data  DataConfig  `mapstructure:"data" toml:"data" json:"data" yaml:"data"`
	Query QueryConfig `mapstructure:"query" toml:"query" json:"query" yaml:"query"`
	Log   LogConfig   `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// DataConfig locates the source datasets.
type DataConfig struct {
	NEOCSVPath  string `mapstructure:"neo_csv_path" toml:"neo_csv_path" json:"neo_csv_path" yaml:"neo_csv_path"`
	CADJSONPath string `mapstructure:"cad_json_path" toml:"cad_json_path" json:"cad_json_path" yaml:"cad_json_path"`
}

// QueryConfig sets query behavior defaults.
type QueryConfig struct {
	// DefaultLimit caps query results when no --limit flag is given.
	// 0 means unlimited.
	DefaultLimit int `mapstructure:"default_limit" toml:"default_limit" json:"default_limit" yaml:"default_limit"`
}

// LogConfig configures console log rendering.
type LogConfig struct {
	// Theme selects the console color scheme: everforest or gruvbox.
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Query.DefaultLimit < 0 {
		return errors.Newf("query.default_limit must be >= 0, got %d", c.Query.DefaultLimit)
	}
	switch c.Log.Theme {
	case "", "everforest", "gruvbox":
	default:
		return errors.Newf("log.theme must be everforest or gruvbox, got %q", c.Log.Theme)
	}
	return nil
}
