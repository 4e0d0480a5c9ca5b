package tui

import (
	"fmt"
	"strings"

	"github.com/moneymind/moneymind/internal/pipeline"
	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSubscriptionsTab(cw int) string {
	t := theme.Active

	if len(a.subs) == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n  " + hintStyle.Render(
			"No subscriptions yet. Add one with: moneymind subs add \"Netflix\" 15.99")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pausedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	var sections []string

	// Active and paused subscriptions
	var rows []string
	for _, s := range a.subs {
		style := nameStyle
		status := ""
		if !s.Active {
			style = pausedStyle
			status = pausedStyle.Render("  (paused)")
		}
		name := truncStr(fmt.Sprintf("%s %s", s.Category.Icon(), s.Name), 28)
		rows = append(rows, fmt.Sprintf("%s %s %s%s",
			style.Render(fmt.Sprintf("%-28s", name)),
			amountStyle.Render(fmt.Sprintf("%10s", a.money(s.Amount))),
			metaStyle.Render(fmt.Sprintf("due on day %d", s.DueDay)),
			status,
		))
	}
	rows = append(rows, "")
	rows = append(rows, metaStyle.Render("Monthly total  ")+
		totalStyle.Render(a.money(pipeline.SubscriptionCost(a.subs))))

	sections = append(sections, components.ContentCard("Subscriptions", strings.Join(rows, "\n"), cw))

	// Due in the next 7 days
	if len(a.upcoming) > 0 {
		dueStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
		var due []string
		for _, u := range a.upcoming {
			when := fmt.Sprintf("in %d days", u.DaysUntilDue)
			switch u.DaysUntilDue {
			case 0:
				when = "today"
			case 1:
				when = "tomorrow"
			}
			due = append(due, fmt.Sprintf("%s %s %s",
				nameStyle.Render(fmt.Sprintf("%-28s", truncStr(u.Name, 28))),
				amountStyle.Render(fmt.Sprintf("%10s", a.money(u.Amount))),
				dueStyle.Render(when),
			))
		}
		sections = append(sections, components.ContentCard("Due soon", strings.Join(due, "\n"), cw))
	}

	return strings.Join(sections, "\n")
}
