// Package config builds the client's runtime settings from layered sources:
// defaults, then environment (including a .env file), then an optional JSON
// file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the finledger client.
//
// Fields:
//   - APIBaseURL: base URL of the remote finance service.
//   - RequestTimeout: per-request deadline for service calls.
//   - DatabasePath: sqlite file holding local session state.
//   - ExportDir: directory report exports are written into.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	ExportDir      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:2022"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "finledger.db"
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays environment
// values, JSON (if a config file is given), and command-line flags, in that
// order of increasing precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
