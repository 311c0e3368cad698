package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"finledger/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "10s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		d.Duration = time.Duration(v)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config after parsing.
type jsonConfig struct {
	APIBaseURL     string   `json:"api_base_url"`
	RequestTimeout duration `json:"request_timeout"`
	DatabasePath   string   `json:"database_path"`
	ExportDir      string   `json:"export_dir"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. Without such a flag nothing is loaded. Only fields
// present in the file override the current value.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
