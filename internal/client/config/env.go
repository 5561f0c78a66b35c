package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is a DTO for environment overrides. Only variables that are set
// override the current Config values.
type EnvConfig struct {
	ServerBaseURL  string        `env:"CONTENTDESK_SERVER_URL"`
	RequestTimeout time.Duration `env:"CONTENTDESK_REQUEST_TIMEOUT"`
	CredentialFile string        `env:"CONTENTDESK_CREDENTIAL_FILE"`
	LogFile        string        `env:"CONTENTDESK_LOG_FILE"`
}

func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.CredentialFile != "" {
		cfg.CredentialFile = ec.CredentialFile
	}
	if ec.LogFile != "" {
		cfg.LogFile = ec.LogFile
	}
}
