package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.Name != "" {
		fmt.Printf("    Name:     %s\n", cfg.General.Name)
	}
	fmt.Printf("    Currency: %s (%s)\n", cfg.General.Currency, cli.CurrencySymbol(cfg.General.Currency))
	fmt.Printf("    Database: %s\n", cfg.DataPath())
	fmt.Println()

	fmt.Println("  [Budget]")
	if cfg.Budget.Monthly != nil {
		fmt.Printf("    Monthly: %s\n", cli.FormatMoney(*cfg.Budget.Monthly, cfg.General.Currency))
	} else {
		fmt.Println("    Monthly: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `moneymind setup` to reconfigure.")
	return nil
}
