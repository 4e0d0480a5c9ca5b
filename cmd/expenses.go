package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagExpensesAll        bool
	flagExpensesCategories bool
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List logged expenses",
	RunE:  runExpenses,
}

var expensesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense by ID (or ID prefix)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesDelete,
}

func init() {
	expensesCmd.Flags().BoolVar(&flagExpensesAll, "all", false, "List every expense, not just this month's")
	expensesCmd.Flags().BoolVar(&flagExpensesCategories, "categories", false, "List the category taxonomy and exit")
	expensesCmd.AddCommand(expensesDeleteCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	if flagExpensesCategories {
		for _, cat := range model.Categories {
			fmt.Printf("  %s %s\n", cat.Icon(), cat)
		}
		return nil
	}

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	expenses := snap.expenses
	title := snap.now.Format("January 2006")
	if flagExpensesAll {
		db, err := openStore(snap.cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		expenses, err = db.ListExpenses()
		if err != nil {
			return err
		}
		title = "All time"
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses logged. Try `moneymind add paid $4.50 for coffee`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s", title)))
	fmt.Println()

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.ID[:8],
			e.Date.Format("2006-01-02"),
			fmt.Sprintf("%s %s", e.Category.Icon(), e.Category),
			e.Note,
			snap.money(e.Amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Category", "Note", "Amount"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Total: %s\n\n", snap.money(pipeline.TotalAmount(expenses)))
	return nil
}

func runExpensesDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := resolveExpenseID(db, args[0])
	if err != nil {
		return err
	}
	if err := db.DeleteExpense(id); err != nil {
		return err
	}

	fmt.Printf("  Deleted expense %s.\n", id[:8])
	return nil
}
