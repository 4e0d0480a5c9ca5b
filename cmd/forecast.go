package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Burn rate, runway, and budget forecast for the month",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	budget := snap.cfg.MonthlyBudget()
	stats := pipeline.ComputeForecast(snap.expenses, snap.subs, budget, snap.dayOfMonth(), snap.daysInMonth())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s", snap.now.Format("January 2006"))))
	fmt.Println()

	rows := [][]string{
		{"Spent so far", snap.money(stats.TotalSpend)},
		{"Expenses logged", cli.FormatNumber(int64(stats.ExpenseCount))},
		{"Burn rate", snap.money(stats.BurnRate) + "/day"},
		{"Projected month spend", snap.money(stats.ProjectedMonthSpend)},
		{"---"},
		{"Subscriptions", fmt.Sprintf("%s/mo (%d active)", snap.money(stats.SubscriptionCost), stats.ActiveSubs)},
	}

	if budget > 0 {
		rows = append(rows,
			[]string{"---"},
			[]string{"Budget", snap.money(stats.Budget)},
			[]string{"Used", cli.FormatPercent(stats.BudgetUtilizationPct)},
			[]string{"Remaining", snap.money(stats.RemainingBudget)},
			[]string{"Runway", cli.FormatRunway(stats.RunwayDays)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if budget > 0 {
		fmt.Println()
		fmt.Println("  " + cli.RenderBudgetBar(stats.BudgetUtilizationPct, 40))
	} else {
		fmt.Println()
		fmt.Println("  No budget set. Run `moneymind budget set <amount>` to enable runway tracking.")
	}
	fmt.Println()

	return nil
}
