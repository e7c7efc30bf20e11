package config

import (
	"time"

	"github.com/dmitrijs2005/xpboard/internal/common"
)

const (
	SchemaProgress = "progress"
	SchemaResult   = "result"
)

// Config holds runtime settings for the xpboard CLI.
//
// Fields:
//   - BaseURL: origin of the learning platform (sign-in and GraphQL live under it).
//   - DBPath: SQLite file that keeps the session token between runs.
//   - Schema: backend schema variant, "progress" or "result".
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - LogLevel: debug, info, warn or error.
//   - ExcludedPathPrefixes: transaction paths stripped from completed-project XP.
type Config struct {
	BaseURL              string
	DBPath               string
	Schema               string
	RequestTimeout       time.Duration
	LogLevel             string
	ExcludedPathPrefixes []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = common.DefaultBaseURL
	c.DBPath = "xpboard.db"
	c.Schema = SchemaProgress
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.ExcludedPathPrefixes = []string{
		"/kisumu/module/piscine-ui/",
		"/kisumu/module/piscine-ux/",
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), XPBOARD_* environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
