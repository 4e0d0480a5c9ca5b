// Package tui provides the interactive Bubble Tea dashboard for moneymind.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/config"
	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/pipeline"
	"github.com/moneymind/moneymind/internal/store"
	"github.com/moneymind/moneymind/internal/tui/components"
	"github.com/moneymind/moneymind/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the month's data has been read from the store.
type DataLoadedMsg struct {
	Expenses []model.Expense
	Subs     []model.Subscription
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	cfg      config.Config
	dataDir  string
	year     int
	month    time.Month
	expenses []model.Expense
	subs     []model.Subscription
	loaded   bool
	loadErr  error

	// Pre-computed for the viewed month
	stats     model.ForecastStats
	breakdown []model.CategoryTotal
	daily     []model.DailySpend
	insights  []model.Insight
	upcoming  []model.UpcomingSubscription

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	refreshing bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model viewing the month of ref.
func NewApp(dataDir string, ref time.Time) App {
	needSetup := !config.Exists()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:       cfg,
		dataDir:   dataDir,
		year:      ref.Year(),
		month:     ref.Month(),
		needSetup: needSetup,
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.cfg, a.dataDir, a.year, a.month),
		a.spinner.Tick,
	)
}

// dayOfMonth returns the elapsed-days reference for the viewed month:
// today's day number for the current month, the full month for past
// months, and zero for months that have not started yet.
func (a App) dayOfMonth() int {
	now := time.Now()
	cur := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	viewed := time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.Local)
	switch {
	case viewed.Equal(cur):
		return now.Day()
	case viewed.Before(cur):
		return pipeline.DaysInMonth(a.year, a.month)
	default:
		return 0
	}
}

func (a App) money(amount float64) string {
	return cli.FormatMoney(amount, a.cfg.General.Currency)
}

func (a *App) recompute() {
	dom := a.dayOfMonth()
	dim := pipeline.DaysInMonth(a.year, a.month)
	budget := a.cfg.MonthlyBudget()

	a.stats = pipeline.ComputeForecast(a.expenses, a.subs, budget, dom, dim)
	a.breakdown = pipeline.CategoryBreakdown(a.expenses, a.subs)
	a.daily = pipeline.DailySpending(a.expenses, a.subs, a.year, a.month, dom)
	a.insights = pipeline.GenerateInsights(a.expenses, a.subs, budget, dom, dim, a.money)
	a.upcoming = pipeline.UpcomingSubscriptions(a.subs, dom, dim, 7)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			if !a.refreshing {
				a.refreshing = true
				return a, loadDataCmd(a.cfg, a.dataDir, a.year, a.month)
			}
			return a, nil
		case "[":
			a.year, a.month = prevMonth(a.year, a.month)
			a.refreshing = true
			return a, loadDataCmd(a.cfg, a.dataDir, a.year, a.month)
		case "]":
			a.year, a.month = nextMonth(a.year, a.month)
			a.refreshing = true
			return a, loadDataCmd(a.cfg, a.dataDir, a.year, a.month)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.expenses = msg.Expenses
		a.subs = msg.Subs
		a.loadErr = msg.Err
		a.loaded = true
		a.refreshing = false
		a.recompute()

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = a.setupVals.apply(a.cfg)
		_ = config.Save(a.cfg)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) monthLabel() string {
	return time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  moneymind needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ moneymind"))
	b.WriteString(subtitleStyle.Render(" · Personal Budget Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading " + a.monthLabel() + "..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o b d i s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"[ ]", "Previous / Next month"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	month := a.monthLabel()
	if a.refreshing {
		month = "refreshing · " + month
	}
	statusBar := components.RenderStatusBar(w, month)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderBreakdownTab(cw)
	case 2:
		content = a.renderDailyTab(cw)
	case 3:
		content = a.renderInsightsTab(cw)
	case 4:
		content = a.renderSubscriptionsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func prevMonth(year int, month time.Month) (int, time.Month) {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return d.Year(), d.Month()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return d.Year(), d.Month()
}

// loadDataCmd reads the viewed month's expenses and all subscriptions
// from the store in a background command.
func loadDataCmd(cfg config.Config, dataDir string, year int, month time.Month) tea.Cmd {
	return func() tea.Msg {
		if dataDir != "" {
			cfg.General.DataDir = dataDir
		}

		db, err := store.Open(cfg.DataPath())
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer func() { _ = db.Close() }()

		expenses, err := db.ListMonthExpenses(year, month)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		subs, err := db.ListSubscriptions()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}

		return DataLoadedMsg{Expenses: expenses, Subs: subs}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
