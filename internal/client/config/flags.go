package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed in doc.go are considered; os.Args is filtered with
// flagx.FilterArgs so the -c/-config flag does not break parsing. It panics
// on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the learning platform")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the session database")
	fs.StringVar(&cfg.Schema, "s", cfg.Schema, "backend schema variant (progress|result)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	excluded := &flagx.StringList{Values: cfg.ExcludedPathPrefixes}
	fs.Var(excluded, "x", "excluded XP path prefix (repeatable)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.ExcludedPathPrefixes = excluded.Values
}
