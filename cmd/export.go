package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/model"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

type exportPayload struct {
	ExportedAt    time.Time            `json:"exportedAt"`
	Currency      string               `json:"currency"`
	MonthlyBudget float64              `json:"monthlyBudget,omitempty"`
	Expenses      []model.Expense      `json:"expenses"`
	Subscriptions []model.Subscription `json:"subscriptions"`
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	expenses, err := db.ListExpenses()
	if err != nil {
		return err
	}
	subs, err := db.ListSubscriptions()
	if err != nil {
		return err
	}

	payload := exportPayload{
		ExportedAt:    time.Now(),
		Currency:      cfg.General.Currency,
		MonthlyBudget: cfg.MonthlyBudget(),
		Expenses:      expenses,
		Subscriptions: subs,
	}

	out := os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}

	if flagExportOutput != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d expenses and %d subscriptions to %s\n",
			len(expenses), len(subs), flagExportOutput)
	}
	return nil
}
