package tui

import (
	"strings"

	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func severityColor(severity model.Severity) lipgloss.Color {
	t := theme.Active
	switch severity {
	case model.SeverityDanger:
		return t.Red
	case model.SeverityWarning:
		return t.Orange
	case model.SeveritySuccess:
		return t.Green
	default:
		return t.Blue
	}
}

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active

	if len(a.insights) == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n  " + hintStyle.Render("No insights yet for " + a.monthLabel() + ".")
	}

	inner := components.CardInnerWidth(cw)
	bodyW := inner - 3
	if bodyW < 20 {
		bodyW = 20
	}

	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	metricStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var cards []string
	for _, ins := range a.insights {
		titleStyle := lipgloss.NewStyle().
			Foreground(severityColor(ins.Severity)).
			Background(t.Surface).
			Bold(true)

		header := ins.Icon + " " + titleStyle.Render(ins.Title)
		if ins.Metric != "" {
			header += " " + metricStyle.Render("["+ins.Metric+"]")
		}

		var b strings.Builder
		b.WriteString(header)
		for _, line := range wrapInsightBody(ins.Body, bodyW) {
			b.WriteString("\n   ")
			b.WriteString(bodyStyle.Render(line))
		}
		cards = append(cards, components.ContentCard("", b.String(), cw))
	}

	return strings.Join(cards, "\n")
}

func wrapInsightBody(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
