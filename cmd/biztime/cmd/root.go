package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/biztime/internal/config"
	"github.com/abrezinsky/biztime/internal/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          "biztime",
	Short:        "Biztime companies and invoices API",
	Long:         `Biztime serves a JSON REST API over companies and the invoices billed to them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml, toml or json)")
	rootCmd.PersistentFlags().String("db-url", "", "database connection URL (sqlite://path, postgres://... or a SQLite file path)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig layers flags of cmd over environment, config file and defaults
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := []config.FlagBinding{
		{Key: "database.url", Flag: cmd.Flags().Lookup("db-url")},
		{Key: "log.level", Flag: cmd.Flags().Lookup("log-level")},
		{Key: "log.format", Flag: cmd.Flags().Lookup("log-format")},
		{Key: "server.host", Flag: cmd.Flags().Lookup("host")},
		{Key: "server.port", Flag: cmd.Flags().Lookup("port")},
		{Key: "log.http", Flag: cmd.Flags().Lookup("http-log")},
	}

	cfg, err := config.Load(configFile, flags...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the application logger from cfg
func newLogger(cfg *config.Config) *logger.SlogLogger {
	log := logger.NewWithOptions(os.Stderr, logger.ParseLevel(cfg.Log.Level), logger.ParseFormat(cfg.Log.Format))
	if cfg.Log.HTTP {
		log.EnableHTTPLogging()
	}
	return log
}
