package pipeline

import (
	"testing"
	"time"

	"github.com/moneymind/moneymind/internal/model"
)

func TestCategoryBreakdown(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(1, model.CategoryGroceries, 100),
		expenseOn(2, model.CategoryGroceries, 300),
	}

	got := CategoryBreakdown(expenses, nil)
	if len(got) != 1 {
		t.Fatalf("CategoryBreakdown returned %d rows, want 1", len(got))
	}
	row := got[0]
	if row.Category != model.CategoryGroceries || !almostEqual(row.Amount, 400) || row.Percentage != 100 {
		t.Errorf("row = %+v, want {Groceries 400 100}", row)
	}
}

func TestCategoryBreakdown_FoldsSubscriptions(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(1, model.CategoryGroceries, 300),
		expenseOn(2, model.CategoryTransportation, 100),
	}
	subs := []model.Subscription{
		activeSub("Netflix", model.CategoryEntertainment, 50, 5),
		activeSub("Spotify", model.CategoryEntertainment, 50, 12),
		{Name: "Cancelled", Amount: 500, DueDay: 1, Category: model.CategoryOther, Active: false},
	}

	got := CategoryBreakdown(expenses, subs)
	if len(got) != 3 {
		t.Fatalf("CategoryBreakdown returned %d rows, want 3", len(got))
	}

	// Sorted by amount descending; subscriptions grouped regardless of
	// their own category.
	if got[0].Category != model.CategoryGroceries || got[0].Percentage != 60 {
		t.Errorf("got[0] = %+v, want Groceries at 60%%", got[0])
	}
	if got[1].Category != model.CategoryTransportation || got[1].Percentage != 20 {
		t.Errorf("got[1] = %+v, want Transportation at 20%%", got[1])
	}
	if got[2].Category != model.CategorySubscription || !almostEqual(got[2].Amount, 100) || got[2].Percentage != 20 {
		t.Errorf("got[2] = %+v, want Subscription 100 at 20%%", got[2])
	}
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	if got := CategoryBreakdown(nil, nil); got != nil {
		t.Errorf("CategoryBreakdown(nil, nil) = %v, want nil", got)
	}

	inactive := []model.Subscription{{Name: "Paused", Amount: 10, DueDay: 1, Active: false}}
	if got := CategoryBreakdown(nil, inactive); got != nil {
		t.Errorf("CategoryBreakdown with only inactive subs = %v, want nil", got)
	}
}

func TestDailySpending(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(5, model.CategoryGroceries, 20),
		expenseOn(5, model.CategoryFoodDining, 15),
		expenseOn(12, model.CategoryShopping, 60),
	}
	subs := []model.Subscription{
		activeSub("Cloud backup", model.CategorySubscription, 10, 31), // clamps to day 30
	}

	days := DailySpending(expenses, subs, 2025, time.June, 10)
	if len(days) != 30 {
		t.Fatalf("DailySpending returned %d days, want 30", len(days))
	}

	if !almostEqual(days[4].Amount, 35) {
		t.Errorf("day 5 amount = %v, want 35", days[4].Amount)
	}
	if days[4].IsFuture {
		t.Error("day 5 marked future with today = 10")
	}
	if !almostEqual(days[11].Amount, 60) {
		t.Errorf("day 12 amount = %v, want 60", days[11].Amount)
	}
	if !days[11].IsFuture {
		t.Error("day 12 not marked future with today = 10")
	}
	if !almostEqual(days[29].Amount, 10) {
		t.Errorf("day 30 amount = %v, want 10 (due day 31 clamped)", days[29].Amount)
	}
	if days[0].Day != 1 || days[29].Day != 30 {
		t.Errorf("day numbering = %d..%d, want 1..30", days[0].Day, days[29].Day)
	}
}

func TestUpcomingSubscriptions(t *testing.T) {
	subs := []model.Subscription{
		activeSub("Rent", model.CategoryRentHousing, 900, 2),         // wraps: due in 4 days
		activeSub("Netflix", model.CategorySubscription, 15, 29),     // due in 1 day
		activeSub("Insurance", model.CategoryInsurance, 120, 20),     // already billed, wraps to 22 days
		{Name: "Paused", Amount: 5, DueDay: 29, Category: model.CategoryOther, Active: false},
	}

	got := UpcomingSubscriptions(subs, 28, 30, 7)
	if len(got) != 2 {
		t.Fatalf("UpcomingSubscriptions returned %d, want 2", len(got))
	}
	if got[0].Name != "Netflix" || got[0].DaysUntilDue != 1 {
		t.Errorf("got[0] = %s in %d days, want Netflix in 1", got[0].Name, got[0].DaysUntilDue)
	}
	if got[1].Name != "Rent" || got[1].DaysUntilDue != 4 {
		t.Errorf("got[1] = %s in %d days, want Rent in 4", got[1].Name, got[1].DaysUntilDue)
	}
}

func TestUpcomingSubscriptions_DueToday(t *testing.T) {
	subs := []model.Subscription{activeSub("Gym", model.CategoryHealth, 40, 15)}

	got := UpcomingSubscriptions(subs, 15, 30, 7)
	if len(got) != 1 || got[0].DaysUntilDue != 0 {
		t.Fatalf("sub due today: got %+v, want one entry with DaysUntilDue 0", got)
	}
}
