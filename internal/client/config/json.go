package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// duration lets JSON specify intervals either as strings like "10s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards; absent fields leave the Config
// untouched.
type JsonConfig struct {
	ServerBaseURL  *string   `json:"server_base_url"`
	RequestTimeout *duration `json:"request_timeout"`
	CredentialFile *string   `json:"credential_file"`
	LogFile        *string   `json:"log_file"`
}

// parseJson overlays Config with values loaded from the JSON file at path.
// An empty path means no config file was requested. Read or unmarshal errors
// panic; a wrong config file is a startup defect, not a runtime condition.
func parseJson(cfg *Config, path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialFile != nil {
		cfg.CredentialFile = *jc.CredentialFile
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
