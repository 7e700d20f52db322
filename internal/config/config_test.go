package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("expected 0.0.0.0:3000, got %s", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"request timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "server.request_timeout"},
		{"shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "server.shutdown_timeout"},
		{"empty database", func(c *Config) { c.Database.URL = "" }, "database.url"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"upper case level ok", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"json format ok", func(c *Config) { c.Log.Format = "JSON" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biztime.yaml")
	content := `server:
  port: 8080
  request_timeout: 5s
database:
  url: "postgres://localhost/biztime?sslmode=disable"
log:
  format: json
  http: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host, got %s", cfg.Server.Host)
	}
	if cfg.Database.URL != "postgres://localhost/biztime?sslmode=disable" {
		t.Errorf("unexpected database url %s", cfg.Database.URL)
	}
	if cfg.Log.Format != "json" || !cfg.Log.HTTP {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_InvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biztime.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BIZTIME_SERVER_PORT", "9090")
	t.Setenv("BIZTIME_DATABASE_URL", "sqlite://:memory:")
	t.Setenv("BIZTIME_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "sqlite://:memory:" {
		t.Errorf("expected env database url, got %s", cfg.Database.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_FlagPrecedence(t *testing.T) {
	t.Setenv("BIZTIME_SERVER_PORT", "9090")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 3000, "")
	fs.String("host", "0.0.0.0", "")
	if err := fs.Parse([]string{"--port", "7070"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("",
		FlagBinding{Key: "server.port", Flag: fs.Lookup("port")},
		FlagBinding{Key: "server.host", Flag: fs.Lookup("host")},
		FlagBinding{Key: "log.level", Flag: nil},
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected flag to win with 7070, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected unchanged flag to leave default host, got %s", cfg.Server.Host)
	}
}

func TestLoad_UnsetFlagDoesNotOverrideEnv(t *testing.T) {
	t.Setenv("BIZTIME_SERVER_PORT", "9090")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 3000, "")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", FlagBinding{Key: "server.port", Flag: fs.Lookup("port")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", cfg.Server.Port)
	}
}
