package tui

import (
	"fmt"
	"strings"

	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active

	if len(a.breakdown) == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n  " + hintStyle.Render("Nothing to break down yet for "+a.monthLabel()+".")
	}

	inner := components.CardInnerWidth(cw)
	labelW := 22
	barW := inner - labelW - 20
	if barW < 10 {
		barW = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	maxAmount := a.breakdown[0].Amount

	var rows []string
	for _, row := range a.breakdown {
		label := truncStr(fmt.Sprintf("%s %s", row.Category.Icon(), row.Category), labelW)
		bar := components.HBar(row.Amount, maxAmount, barW, lipgloss.Color(row.Category.Color()))
		rows = append(rows, fmt.Sprintf("%s %s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)),
			bar,
			amountStyle.Render(fmt.Sprintf("%10s", a.money(row.Amount))),
			pctStyle.Render(fmt.Sprintf("%3d%%", row.Percentage)),
		))
	}

	title := fmt.Sprintf("Category Breakdown · %s", a.monthLabel())
	return components.ContentCard(title, strings.Join(rows, "\n"), cw)
}
