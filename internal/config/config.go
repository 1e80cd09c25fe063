// Package config carries the handful of runtime knobs this server has:
// the name/version it reports at MCP initialize, and its log verbosity.
// It follows the functional-options pattern used throughout this
// codebase's ancestor SDK, generalized down to what a stateless
// knowledge-base server actually needs configured.
package config

import "log/slog"

// Config is the fully-resolved server configuration after all Options
// have been applied.
type Config struct {
	ServerName    string
	ServerVersion string
	LogLevel      slog.Level
}

// Option configures a Config using the functional options pattern.
type Option func(*Config)

// Default returns the configuration a bare `electronics-mcp-server`
// invocation runs with, before any Option is applied.
func Default() *Config {
	return &Config{
		ServerName:    "electronics-mcp-server",
		ServerVersion: "1.0.0",
		LogLevel:      slog.LevelInfo,
	}
}

// Apply builds a Config starting from Default and applying opts in order.
func Apply(opts ...Option) *Config {
	cfg := Default()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithServerName overrides the name reported at MCP initialize.
func WithServerName(name string) Option {
	return func(c *Config) {
		c.ServerName = name
	}
}

// WithServerVersion overrides the version reported at MCP initialize.
func WithServerVersion(version string) Option {
	return func(c *Config) {
		c.ServerVersion = version
	}
}

// WithLogLevel sets the minimum level the stderr logger emits.
func WithLogLevel(level slog.Level) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}
