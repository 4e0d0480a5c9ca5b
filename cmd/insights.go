package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Spending pattern insights for the month",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	insights := pipeline.GenerateInsights(
		snap.expenses, snap.subs,
		snap.cfg.MonthlyBudget(),
		snap.dayOfMonth(), snap.daysInMonth(),
		snap.money,
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INSIGHTS  %s", snap.now.Format("January 2006"))))
	fmt.Println()

	for _, ins := range insights {
		fmt.Println(cli.RenderInsight(ins))
	}

	return nil
}
