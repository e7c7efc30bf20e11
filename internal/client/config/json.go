package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/xpboard/internal/flagx"
	"github.com/dmitrijs2005/xpboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from zero values.
type JsonConfig struct {
	BaseURL              *string         `json:"base_url"`
	DBPath               *string         `json:"db_path"`
	Schema               *string         `json:"schema"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	LogLevel             *string         `json:"log_level"`
	ExcludedPathPrefixes []string        `json:"excluded_path_prefixes"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.Schema != nil {
		cfg.Schema = *jc.Schema
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ExcludedPathPrefixes != nil {
		cfg.ExcludedPathPrefixes = append([]string(nil), jc.ExcludedPathPrefixes...)
	}
}
