package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Spending by category for the month",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	rows := pipeline.CategoryBreakdown(snap.expenses, snap.subs)
	if len(rows) == 0 {
		fmt.Println("\n  Nothing spent this month yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BREAKDOWN  %s", snap.now.Format("January 2006"))))
	fmt.Println()

	maxAmount := rows[0].Amount
	for _, row := range rows {
		label := fmt.Sprintf("%s %s", row.Category.Icon(), row.Category)
		value := fmt.Sprintf("%s (%s)", snap.money(row.Amount), cli.FormatPercent(row.Percentage))
		fmt.Println(cli.RenderHorizontalBar(label, value, row.Amount, maxAmount, 24))
	}
	fmt.Println()

	return nil
}
