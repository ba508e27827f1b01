package config

import "log/slog"

// Config holds runtime settings for the parlor CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite store.
//   - PageSize: number of flavors shown per catalog page.
//   - LogLevel: one of "debug", "info", "warn", "error".
type Config struct {
	DatabasePath string
	PageSize     int
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "ice_cream_parlor.db"
	c.PageSize = 5
	c.LogLevel = "info"
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
