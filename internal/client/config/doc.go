// Package config loads runtime configuration for the xpboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. XPBOARD_* environment variables (see parseEnv), after loading an
//     optional .env file with godotenv.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the learning platform
//	-d string   path of the SQLite session database
//	-s string   backend schema variant (progress|result)
//	-t int      request timeout in seconds (0 disables)
//	-l string   log level
//	-x string   excluded XP path prefix (repeatable)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds. Absent keys leave the earlier value untouched:
//
//	{
//	  "base_url": "https://learn.zone01kisumu.ke",
//	  "db_path": "xpboard.db",
//	  "schema": "progress",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "excluded_path_prefixes": ["/kisumu/module/piscine-ui/"]
//	}
//
// # Environment
//
//	XPBOARD_BASE_URL, XPBOARD_DB_PATH, XPBOARD_SCHEMA, XPBOARD_LOG_LEVEL
//	XPBOARD_REQUEST_TIMEOUT          Go duration, e.g. "45s"
//	XPBOARD_EXCLUDED_PATH_PREFIXES   comma-separated
package config
