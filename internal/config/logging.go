package config

import "log/slog"

// SlogLevel maps the configured log level onto slog's scale. validate
// has already rejected anything outside the known set.
func (c Config) SlogLevel() slog.Level {
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
