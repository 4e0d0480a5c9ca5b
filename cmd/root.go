package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagDate    string
)

var rootCmd = &cobra.Command{
	Use:   "moneymind",
	Short: "Personal budgeting CLI",
	Long:  "Track expenses and subscriptions, forecast your budget, and surface spending insights.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data home)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
}

// snapshot bundles everything the analytical pipeline needs for one month.
type snapshot struct {
	cfg      config.Config
	expenses []model.Expense
	subs     []model.Subscription
	now      time.Time
}

func (s snapshot) dayOfMonth() int { return s.now.Day() }

func (s snapshot) daysInMonth() int {
	return time.Date(s.now.Year(), s.now.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// money formats an amount in the configured currency.
func (s snapshot) money(amount float64) string {
	return formatMoney(amount, s.cfg.General.Currency)
}

// openStore opens the database, honoring --data-dir over the config.
func openStore(cfg config.Config) (*store.Store, error) {
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return store.Open(cfg.DataPath())
}

// referenceDate resolves --date, defaulting to today.
func referenceDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", flagDate, err)
	}
	return t, nil
}

// loadSnapshot is the shared loading path used by the analytical commands:
// it opens the store, reads the reference month's expenses and all
// subscriptions, and closes the store again.
func loadSnapshot() (snapshot, error) {
	cfg, err := config.Load()
	if err != nil {
		return snapshot{}, err
	}

	now, err := referenceDate()
	if err != nil {
		return snapshot{}, err
	}

	db, err := openStore(cfg)
	if err != nil {
		return snapshot{}, err
	}
	defer func() { _ = db.Close() }()

	expenses, err := db.ListMonthExpenses(now.Year(), now.Month())
	if err != nil {
		return snapshot{}, fmt.Errorf("loading expenses: %w", err)
	}
	subs, err := db.ListSubscriptions()
	if err != nil {
		return snapshot{}, fmt.Errorf("loading subscriptions: %w", err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %s: %d expenses, %d subscriptions\n",
			now.Format("January 2006"), len(expenses), len(subs))
	}

	return snapshot{cfg: cfg, expenses: expenses, subs: subs, now: now}, nil
}

func formatMoney(amount float64, currency string) string {
	return cli.FormatMoney(amount, currency)
}

func loadConfig() (config.Config, error) {
	return config.Load()
}

// resolveExpenseID expands an ID prefix to a full expense ID.
func resolveExpenseID(db *store.Store, prefix string) (string, error) {
	expenses, err := db.ListExpenses()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, e := range expenses {
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no expense matching %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d expenses, use a longer prefix", prefix, len(matches))
	}
}

// resolveSubscriptionID expands an ID prefix or exact name to a full
// subscription ID.
func resolveSubscriptionID(db *store.Store, key string) (string, error) {
	subs, err := db.ListSubscriptions()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range subs {
		if strings.HasPrefix(s.ID, key) || strings.EqualFold(s.Name, key) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no subscription matching %q", key)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d subscriptions, use the ID", key, len(matches))
	}
}
