// Package config provides configuration management for the biztime server.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/abrezinsky/biztime/internal/logger"
)

// Config holds all runtime settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string
	Port            int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the store
type DatabaseConfig struct {
	// URL is postgres://..., sqlite://<path> or a bare SQLite path.
	URL string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
	HTTP   bool
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			URL: "biztime.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: string(logger.FormatText),
			HTTP:   false,
		},
	}
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Validate checks port range, positive timeouts and known log settings.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch logger.Format(strings.ToLower(c.Log.Format)) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
