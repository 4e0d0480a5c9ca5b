package tui

import (
	"fmt"
	"strings"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("Could not load data: %s", a.loadErr))
	}

	var sections []string

	// Metric cards
	runwayNote := ""
	if a.stats.RunwayDays >= 0 {
		runwayNote = "at current pace"
	}
	budgetNote := ""
	if a.stats.Budget > 0 {
		budgetNote = fmt.Sprintf("of %s budget", a.money(a.stats.Budget))
	}
	metrics := []components.Metric{
		{Label: "Spent", Value: a.money(a.stats.TotalSpend), Note: budgetNote},
		{Label: "Daily burn", Value: a.money(a.stats.BurnRate)},
		{Label: "Projected", Value: a.money(a.stats.ProjectedMonthSpend), Note: "by month end"},
		{Label: "Runway", Value: cli.FormatRunway(a.stats.RunwayDays), Note: runwayNote},
	}
	sections = append(sections, components.MetricCardRow(metrics, cw))

	// Budget gauge
	if a.stats.Budget > 0 {
		inner := components.CardInnerWidth(cw)
		barW := inner - 22
		if barW < 10 {
			barW = 10
		}
		gauge := components.BudgetBar("Budget", float64(a.stats.BudgetUtilizationPct)/100, 10, barW)

		remainStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		remaining := a.money(a.stats.RemainingBudget) + " remaining after subscriptions"
		if a.stats.RemainingBudget < 0 {
			remainStyle = lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
			remaining = a.money(-a.stats.RemainingBudget) + " over budget"
		}

		body := gauge + "\n" + remainStyle.Render(remaining)
		sections = append(sections, components.ContentCard("Budget", body, cw))
	}

	// Spending sparkline over elapsed days
	var values []float64
	for _, d := range a.daily {
		if !d.IsFuture {
			values = append(values, d.Amount)
		}
	}
	if len(values) > 0 {
		spark := components.Sparkline(values, t.Accent)
		subStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		body := spark + "\n" + subStyle.Render(fmt.Sprintf("%d expenses · %d active subscriptions",
			a.stats.ExpenseCount, a.stats.ActiveSubs))
		sections = append(sections, components.ContentCard("Spending so far", body, cw))
	}

	if a.stats.ExpenseCount == 0 && a.stats.ActiveSubs == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		sections = append(sections, "\n  "+hintStyle.Render(
			"No expenses in "+a.monthLabel()+". Add one with: moneymind add \"coffee 4.50\""))
	}

	return strings.Join(sections, "\n")
}
