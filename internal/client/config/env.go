package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envBaseURL        = "XPBOARD_BASE_URL"
	envDBPath         = "XPBOARD_DB_PATH"
	envSchema         = "XPBOARD_SCHEMA"
	envRequestTimeout = "XPBOARD_REQUEST_TIMEOUT"
	envLogLevel       = "XPBOARD_LOG_LEVEL"
	envExcluded       = "XPBOARD_EXCLUDED_PATH_PREFIXES"
)

// dotenvFile is read into the process environment when present. Variables
// already set are not overridden.
var dotenvFile = ".env"

// parseEnv overlays Config with XPBOARD_* variables. It panics on a
// malformed .env file or timeout value.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookup(envBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup(envDBPath); ok {
		cfg.DBPath = v
	}
	if v, ok := lookup(envSchema); ok {
		cfg.Schema = v
	}
	if v, ok := lookup(envRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envExcluded); ok {
		var prefixes []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				prefixes = append(prefixes, p)
			}
		}
		cfg.ExcludedPathPrefixes = prefixes
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
