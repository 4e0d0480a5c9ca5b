// Package cmd implements the moneymind CLI commands.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/parse"

	"github.com/spf13/cobra"
)

var (
	flagAddAmount   float64
	flagAddCategory string
	flagAddNote     string
	flagAddDate     string
	flagAddYes      bool
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add an expense from a free-text description",
	Long: `Add an expense. Describe it in plain words and the parser extracts
the amount, category, and note:

  moneymind add paid $45.99 for lunch at a diner
  moneymind add uber ride home 12.50
  moneymind add spent 15k on rent

Use --amount/--category/--note to override or skip parsing entirely.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Expense amount (skips amount parsing)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category (skips classification)")
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Note (skips note extraction)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	addCmd.Flags().BoolVarP(&flagAddYes, "yes", "y", false, "Save without confirmation")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))

	draft, err := buildDraft(text)
	if err != nil {
		return err
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", flagAddDate, err)
		}
	}

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Printf("  Amount:     %s\n", formatMoney(draft.Amount, cfg.General.Currency))
	fmt.Printf("  Category:   %s %s", draft.Category.Icon(), draft.Category)
	if draft.Confidence > 0 {
		fmt.Printf("  (%d%% confident)", draft.Confidence)
	}
	fmt.Println()
	fmt.Printf("  Note:       %s\n", draft.Note)
	fmt.Printf("  Date:       %s\n", date.Format("2006-01-02"))
	fmt.Println()

	if !flagAddYes && !confirm("Save this expense?") {
		fmt.Println("  Discarded.")
		return nil
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	saved, err := db.AddExpense(model.Expense{
		Amount:   draft.Amount,
		Category: draft.Category,
		Note:     draft.Note,
		Date:     date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Saved (%s).\n", saved.ID[:8])
	return nil
}

// buildDraft parses the free text, then applies any flag overrides.
func buildDraft(text string) (model.DraftExpense, error) {
	var draft model.DraftExpense

	if text != "" {
		parsed, err := parse.Parse(text)
		if errors.Is(err, parse.ErrNoAmount) && flagAddAmount == 0 {
			return draft, fmt.Errorf("couldn't find an amount in %q; try including a number, or pass --amount", text)
		}
		if err == nil {
			draft = parsed
		}
	}

	if flagAddAmount != 0 {
		draft.Amount = flagAddAmount
	}
	if flagAddCategory != "" {
		cat, ok := model.ParseCategory(flagAddCategory)
		if !ok {
			return draft, fmt.Errorf("unknown category %q (see `moneymind expenses --categories`)", flagAddCategory)
		}
		draft.Category = cat
		draft.Confidence = 0
	}
	if flagAddNote != "" {
		draft.Note = flagAddNote
	}

	if draft.Amount <= 0 {
		return draft, errors.New("no amount given: describe the expense or pass --amount")
	}
	if draft.Category == "" {
		draft.Category = model.CategoryOther
	}
	if draft.Note == "" {
		draft.Note = fmt.Sprintf("%s expense", draft.Category)
	}

	return draft, nil
}

func confirm(prompt string) bool {
	fmt.Printf("  %s [Y/n] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}
