package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// DailyBarChart renders one bar per day of the month. Days past today
// use the dim future color. Labels mark every fifth day on the axis.
func DailyBarChart(values []float64, today int, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	if width < 20 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	ceiling := niceCeiling(maxVal)

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}

	n := len(values)
	barW := 1
	if (width-yLabelW-1)/n >= 2 {
		barW = 2
	}
	axisLen := n * barW

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	futureStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatChartLabel(ceiling)
		} else if row == height/2 {
			label = formatChartLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			style := barStyle
			if i+1 > today {
				style = futureStyle
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis with day numbers every 5 days
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	for day := 1; day <= n; day++ {
		if day != 1 && day%5 != 0 {
			continue
		}
		lbl := fmt.Sprintf("%d", day)
		pos := (day - 1) * barW
		if pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		copy(buf[pos:], lbl)
	}
	b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))

	return b.String()
}

// HBar renders a single horizontal bar scaled against maxValue, used
// for category breakdown rows inside a card.
func HBar(value, maxValue float64, width int, color lipgloss.Color) string {
	t := theme.Active
	if maxValue <= 0 {
		maxValue = 1
	}
	filled := int(math.Round(value / maxValue * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 1 && value > 0 {
		filled = 1
	}

	fillStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return fillStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// niceCeiling rounds maxVal up to a clean chart ceiling (1/2/5 times
// a power of ten).
func niceCeiling(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(maxVal))
	base := math.Pow(10, exp)
	for _, mult := range []float64{1, 2, 5, 10} {
		if maxVal <= mult*base {
			return mult * base
		}
	}
	return 10 * base
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
