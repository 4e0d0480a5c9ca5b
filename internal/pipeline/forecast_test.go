package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/moneymind/moneymind/internal/model"
)

func expenseOn(day int, cat model.Category, amount float64) model.Expense {
	return model.Expense{
		Amount:   amount,
		Category: cat,
		Date:     time.Date(2025, time.June, day, 0, 0, 0, 0, time.Local),
	}
}

func activeSub(name string, cat model.Category, amount float64, dueDay int) model.Subscription {
	return model.Subscription{Name: name, Amount: amount, DueDay: dueDay, Category: cat, Active: true}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeForecast(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(1, model.CategoryGroceries, 100),
		expenseOn(2, model.CategoryGroceries, 300),
	}

	stats := ComputeForecast(expenses, nil, 1000, 10, 30)

	if !almostEqual(stats.TotalSpend, 400) {
		t.Errorf("TotalSpend = %v, want 400", stats.TotalSpend)
	}
	if stats.ExpenseCount != 2 {
		t.Errorf("ExpenseCount = %d, want 2", stats.ExpenseCount)
	}
	if !almostEqual(stats.BurnRate, 40) {
		t.Errorf("BurnRate = %v, want 40", stats.BurnRate)
	}
	if !almostEqual(stats.ProjectedMonthSpend, 1200) {
		t.Errorf("ProjectedMonthSpend = %v, want 1200", stats.ProjectedMonthSpend)
	}
	if stats.BudgetUtilizationPct != 40 {
		t.Errorf("BudgetUtilizationPct = %d, want 40", stats.BudgetUtilizationPct)
	}
	if !almostEqual(stats.RemainingBudget, 600) {
		t.Errorf("RemainingBudget = %v, want 600", stats.RemainingBudget)
	}
	// floor(1000 / 40)
	if stats.RunwayDays != 25 {
		t.Errorf("RunwayDays = %d, want 25", stats.RunwayDays)
	}
}

func TestComputeForecast_AmortizesSubscriptionsIntoRunway(t *testing.T) {
	expenses := []model.Expense{expenseOn(1, model.CategoryFoodDining, 400)}
	subs := []model.Subscription{
		activeSub("Netflix", model.CategorySubscription, 30, 5),
		{Name: "Old gym", Amount: 50, DueDay: 1, Category: model.CategoryHealth, Active: false},
	}

	stats := ComputeForecast(expenses, subs, 1000, 10, 30)

	if !almostEqual(stats.SubscriptionCost, 30) {
		t.Errorf("SubscriptionCost = %v, want 30 (inactive subs excluded)", stats.SubscriptionCost)
	}
	if stats.ActiveSubs != 1 {
		t.Errorf("ActiveSubs = %d, want 1", stats.ActiveSubs)
	}
	if !almostEqual(stats.RemainingBudget, 570) {
		t.Errorf("RemainingBudget = %v, want 570", stats.RemainingBudget)
	}
	// Daily rate 400/10 + 30/30 = 41, floor(1000/41) = 24.
	if stats.RunwayDays != 24 {
		t.Errorf("RunwayDays = %d, want 24", stats.RunwayDays)
	}
}

func TestComputeForecast_SubscriptionsOnlyStillHaveRunway(t *testing.T) {
	subs := []model.Subscription{activeSub("Everything", model.CategorySubscription, 300, 1)}

	stats := ComputeForecast(nil, subs, 1000, 10, 30)

	if stats.BurnRate != 0 {
		t.Errorf("BurnRate = %v, want 0 with no expenses", stats.BurnRate)
	}
	// Daily rate 300/30 = 10, floor(1000/10) = 100.
	if stats.RunwayDays != 100 {
		t.Errorf("RunwayDays = %d, want 100", stats.RunwayDays)
	}
}

func TestComputeForecast_NoBudget(t *testing.T) {
	expenses := []model.Expense{expenseOn(3, model.CategoryShopping, 50)}

	stats := ComputeForecast(expenses, nil, 0, 10, 30)

	if stats.BudgetUtilizationPct != 0 {
		t.Errorf("BudgetUtilizationPct = %d, want 0 when budget unset", stats.BudgetUtilizationPct)
	}
	if stats.RunwayDays != -1 {
		t.Errorf("RunwayDays = %d, want -1 when budget unset", stats.RunwayDays)
	}
}

func TestComputeForecast_NoSpendingPattern(t *testing.T) {
	stats := ComputeForecast(nil, nil, 1000, 10, 30)

	if stats.BurnRate != 0 || stats.ProjectedMonthSpend != 0 {
		t.Errorf("BurnRate = %v, ProjectedMonthSpend = %v, want 0, 0", stats.BurnRate, stats.ProjectedMonthSpend)
	}
	if stats.RunwayDays != -1 {
		t.Errorf("RunwayDays = %d, want -1 with no spending at all", stats.RunwayDays)
	}
	if !almostEqual(stats.RemainingBudget, 1000) {
		t.Errorf("RemainingBudget = %v, want 1000", stats.RemainingBudget)
	}
}

func TestComputeForecast_ZeroDayOfMonth(t *testing.T) {
	expenses := []model.Expense{expenseOn(1, model.CategoryOther, 100)}

	stats := ComputeForecast(expenses, nil, 1000, 0, 30)

	if stats.BurnRate != 0 {
		t.Errorf("BurnRate = %v, want 0 when dayOfMonth is 0", stats.BurnRate)
	}
	if stats.RunwayDays != -1 {
		t.Errorf("RunwayDays = %d, want -1 when dayOfMonth is 0", stats.RunwayDays)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.June, 30},
		{2025, time.July, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFilterMonth(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(1, model.CategoryGroceries, 10),
		{Amount: 20, Category: model.CategoryGroceries, Date: time.Date(2025, time.May, 31, 0, 0, 0, 0, time.Local)},
		expenseOn(30, model.CategoryGroceries, 30),
	}

	got := FilterMonth(expenses, 2025, time.June)
	if len(got) != 2 {
		t.Fatalf("FilterMonth returned %d expenses, want 2", len(got))
	}
	if !almostEqual(TotalAmount(got), 40) {
		t.Errorf("TotalAmount(filtered) = %v, want 40", TotalAmount(got))
	}
}
