package components

import (
	"fmt"
	"strings"

	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. The right side shows
// the month the dashboard is displaying.
func RenderStatusBar(width int, month string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	right := ""
	if month != "" {
		right = fmt.Sprintf("%s ", month)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
