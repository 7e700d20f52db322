package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/biztime/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample companies and invoices",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	a, err := app.New(log, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Seed(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d companies and %d invoices\n", result.Companies, result.Invoices)
	return nil
}
