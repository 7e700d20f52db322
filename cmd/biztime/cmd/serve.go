package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/biztime/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "0.0.0.0", "HTTP server host")
	serveCmd.Flags().Int("port", 3000, "HTTP server port")
	serveCmd.Flags().Bool("http-log", false, "log every HTTP request")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	a, err := app.New(log, cfg)
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Starting biztime", "version", Version, "addr", cfg.Addr())
	if err := a.Run(ctx); err != nil {
		log.Error("Server failed", "error", err)
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
