package cmd

import (
	"fmt"
	"strconv"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or change the monthly budget",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the monthly budget",
	RunE:  runBudgetClear,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd, budgetClearCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Budget.Monthly == nil {
		fmt.Println("  No monthly budget set.")
		fmt.Println("  Set one with `moneymind budget set 1500`.")
		return nil
	}

	fmt.Printf("  Monthly budget: %s\n", cli.FormatMoney(*cfg.Budget.Monthly, cfg.General.Currency))
	return nil
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid budget %q: want a positive number", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Budget.Monthly = &amount
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Monthly budget set to %s.\n", cli.FormatMoney(amount, cfg.General.Currency))
	return nil
}

func runBudgetClear(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Budget.Monthly = nil
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println("  Monthly budget cleared.")
	return nil
}
