package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	name     string
	currency string
	budget   string
	theme    string
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.currency = "USD"
	vals.theme = theme.Active.Name

	currencyOpts := make([]huh.Option[string], 0, len(cli.Currencies()))
	for _, code := range cli.Currencies() {
		label := fmt.Sprintf("%s (%s)", code, cli.CurrencySymbol(code))
		currencyOpts = append(currencyOpts, huh.NewOption(label, code))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to moneymind!").
				Description("What should we call you? (optional)").
				Value(&vals.name),

			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&vals.currency),

			huh.NewInput().
				Title("Monthly budget").
				Description("Leave blank to skip budget tracking.").
				Placeholder("2000").
				Validate(validateBudget).
				Value(&vals.budget),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

func validateBudget(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number, like 2000")
	}
	if v <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	return nil
}

// apply folds the form answers into cfg.
func (v setupValues) apply(cfg config.Config) config.Config {
	if name := strings.TrimSpace(v.name); name != "" {
		cfg.General.Name = name
	}
	if v.currency != "" {
		cfg.General.Currency = v.currency
	}
	if budget := strings.TrimSpace(v.budget); budget != "" {
		if amount, err := strconv.ParseFloat(budget, 64); err == nil && amount > 0 {
			cfg.Budget.Monthly = &amount
		}
	}
	if v.theme != "" {
		cfg.Appearance.Theme = v.theme
	}
	return cfg
}
