package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"base_url":               "https://www.example",
		"db_path":                "/var/lib/xpboard.db",
		"schema":                 "result",
		"request_timeout":        "10s",
		"log_level":              "debug",
		"excluded_path_prefixes": []string{"/x/"},
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://www.example", cfg.BaseURL)
		assert.Equal(t, "/var/lib/xpboard.db", cfg.DBPath)
		assert.Equal(t, "result", cfg.Schema)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, []string{"/x/"}, cfg.ExcludedPathPrefixes)
	})

	t.Run("partial file keeps earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"schema": "result"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "result", cfg.Schema)
		assert.Equal(t, "https://learn.zone01kisumu.ke", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "https://defaults", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "https://defaults", cfg.BaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
