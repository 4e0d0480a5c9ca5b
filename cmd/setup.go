package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to MoneyMind!")
	fmt.Println()

	// 1. Name
	fmt.Println("  1. What should we call you? (optional)")
	if cfg.General.Name != "" {
		fmt.Printf("     Current: %s\n", cfg.General.Name)
	}
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	if name = strings.TrimSpace(name); name != "" {
		cfg.General.Name = name
	}
	fmt.Println()

	// 2. Currency
	fmt.Println("  2. Currency")
	fmt.Printf("     One of: %s\n", strings.Join(cli.Currencies(), " "))
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 3. Monthly budget
	fmt.Println("  3. Monthly budget (blank to skip)")
	if cfg.Budget.Monthly != nil {
		fmt.Printf("     Current: %s\n", cli.FormatMoney(*cfg.Budget.Monthly, cfg.General.Currency))
	}
	fmt.Print("     > ")
	budgetStr, _ := reader.ReadString('\n')
	budgetStr = strings.TrimSpace(budgetStr)
	if budgetStr != "" {
		budget, err := strconv.ParseFloat(budgetStr, 64)
		if err != nil || budget <= 0 {
			fmt.Println("     Not a positive number, leaving budget unchanged.")
		} else {
			cfg.Budget.Monthly = &budget
		}
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	for i, th := range theme.All {
		marker := ""
		if i == 0 {
			marker = " [default]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, th.Name, marker)
	}
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	cfg.Appearance.Theme = theme.All[0].Name
	if n, err := strconv.Atoi(strings.TrimSpace(themeChoice)); err == nil && n >= 1 && n <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[n-1].Name
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `moneymind setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
