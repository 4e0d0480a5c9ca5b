package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Day-by-day spending for the month",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	days := pipeline.DailySpending(snap.expenses, snap.subs, snap.now.Year(), snap.now.Month(), snap.dayOfMonth())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPEND  %s", snap.now.Format("January 2006"))))
	fmt.Println()

	// Sparkline over the elapsed days
	var values []float64
	for _, d := range days {
		if d.IsFuture {
			break
		}
		values = append(values, d.Amount)
	}
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		if d.IsFuture && d.Amount == 0 {
			continue
		}
		marker := ""
		if d.IsFuture {
			marker = "upcoming"
		}
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			snap.money(d.Amount),
			marker,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Spent", ""},
		Rows:    rows,
	}))

	return nil
}
