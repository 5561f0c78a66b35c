// Package config assembles runtime settings for the contentdesk client.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the contentdesk client.
//
// Fields:
//   - ServerBaseURL: base URL of the content service API.
//   - RequestTimeout: per-request transport timeout.
//   - CredentialFile: path of the persisted credential; empty means the
//     per-user default location.
//   - LogFile: structured log sink; empty discards logs (the TUI owns the
//     terminal, so logs never go to stdout).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	CredentialFile string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.CredentialFile = ""
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file is given), environment variables, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, configFilePath(os.Args[1:]))
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
