package components

import (
	"strings"
	"testing"

	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	if len(widths) != 3 {
		t.Fatalf("LayoutRow returned %d widths, want 3", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 {
		t.Errorf("widths sum = %d, want 100", sum)
	}
	if widths[0] != 34 || widths[1] != 33 || widths[2] != 33 {
		t.Errorf("widths = %v, want [34 33 33]", widths)
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(80, 0); got != nil {
		t.Errorf("LayoutRow(80, 0) = %v, want nil", got)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	metrics := []Metric{
		{Label: "Spent", Value: "$480.00"},
		{Label: "Daily burn", Value: "$40.00"},
		{Label: "Runway", Value: "25 days"},
	}
	row := MetricCardRow(metrics, 90)
	if row == "" {
		t.Fatal("MetricCardRow returned empty string")
	}
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("row width = %d, want 90", got)
	}
}

func TestSparklinePeaks(t *testing.T) {
	out := Sparkline([]float64{0, 50, 100}, theme.Active.Accent)
	if !strings.ContainsRune(out, '█') {
		t.Error("sparkline missing full block for peak value")
	}
	if !strings.ContainsRune(out, '▁') {
		t.Error("sparkline missing low block for zero value")
	}
}

func TestDailyBarChartFallsBackWhenTiny(t *testing.T) {
	values := []float64{10, 20, 30}
	out := DailyBarChart(values, 3, 10, 2)
	if strings.Contains(out, "└") {
		t.Error("tiny chart should fall back to a sparkline without an axis")
	}
}

func TestDailyBarChartAxis(t *testing.T) {
	values := make([]float64, 30)
	values[4] = 35
	out := DailyBarChart(values, 15, 80, 6)
	if !strings.Contains(out, "└") {
		t.Error("chart missing x-axis corner")
	}
	if !strings.Contains(out, "│") {
		t.Error("chart missing y-axis")
	}
}

func TestHBarScales(t *testing.T) {
	full := HBar(100, 100, 10, theme.Active.Accent)
	if strings.Count(full, "█") != 10 {
		t.Errorf("full bar has %d filled cells, want 10", strings.Count(full, "█"))
	}
	tiny := HBar(1, 1000, 10, theme.Active.Accent)
	if strings.Count(tiny, "█") != 1 {
		t.Error("nonzero value should render at least one filled cell")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('b'); got != 1 {
		t.Errorf("TabIdxByKey('b') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestNiceCeiling(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{35, 50},
		{120, 200},
		{7, 10},
		{1000, 1000},
		{0, 1},
	}
	for _, c := range cases {
		if got := niceCeiling(c.in); got != c.want {
			t.Errorf("niceCeiling(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
