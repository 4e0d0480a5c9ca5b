package tui

import (
	"fmt"
	"strings"

	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDailyTab(cw int) string {
	t := theme.Active

	if len(a.daily) == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n  " + hintStyle.Render("No daily data for " + a.monthLabel() + ".")
	}

	values := make([]float64, len(a.daily))
	for i, d := range a.daily {
		values[i] = d.Amount
	}

	inner := components.CardInnerWidth(cw)
	chartH := 8
	chart := components.DailyBarChart(values, a.dayOfMonth(), inner, chartH)

	// Highest day and elapsed average
	highest := 0
	var elapsedTotal float64
	elapsedDays := 0
	for i, d := range a.daily {
		if d.Amount > a.daily[highest].Amount {
			highest = i
		}
		if !d.IsFuture {
			elapsedTotal += d.Amount
			elapsedDays++
		}
	}

	statStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var stats []string
	if a.daily[highest].Amount > 0 {
		stats = append(stats, statStyle.Render("Busiest day  ")+
			valStyle.Render(fmt.Sprintf("%s (%s)",
				a.daily[highest].Date.Format("Jan 2"), a.money(a.daily[highest].Amount))))
	}
	if elapsedDays > 0 {
		stats = append(stats, statStyle.Render("Daily average  ")+
			valStyle.Render(a.money(elapsedTotal/float64(elapsedDays))))
	}

	body := chart
	if len(stats) > 0 {
		body += "\n\n" + strings.Join(stats, statStyle.Render("   ·   "))
	}

	title := fmt.Sprintf("Daily Spending · %s", a.monthLabel())
	return components.ContentCard(title, body, cw)
}
