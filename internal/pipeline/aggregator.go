package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/moneymind/moneymind/internal/model"
)

// CategoryBreakdown groups one month's expenses by category, folds the
// active subscription total under the Subscription category, and returns
// rows sorted by amount descending with each row's share of the combined
// total. Returns nil when there is nothing to break down.
func CategoryBreakdown(expenses []model.Expense, subs []model.Subscription) []model.CategoryTotal {
	totalSpend := TotalAmount(expenses)
	subsTotal := SubscriptionCost(subs)
	if totalSpend == 0 && subsTotal == 0 {
		return nil
	}

	// Track first-appearance order so equal amounts sort deterministically.
	totals := make(map[model.Category]float64)
	var order []model.Category
	for _, e := range expenses {
		if _, ok := totals[e.Category]; !ok {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	if subsTotal > 0 {
		if _, ok := totals[model.CategorySubscription]; !ok {
			order = append(order, model.CategorySubscription)
		}
		totals[model.CategorySubscription] += subsTotal
	}

	combined := totalSpend + subsTotal
	rows := make([]model.CategoryTotal, 0, len(order))
	for _, cat := range order {
		rows = append(rows, model.CategoryTotal{
			Category:   cat,
			Amount:     totals[cat],
			Percentage: int(math.Round(totals[cat] / combined * 100)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount > rows[j].Amount
	})

	return rows
}

// DailySpending produces one record per calendar day of the given month:
// that day's expense sum plus any subscription billing that day, with
// days after today marked as future.
func DailySpending(
	expenses []model.Expense,
	subs []model.Subscription,
	year int,
	month time.Month,
	today int,
) []model.DailySpend {
	daysInMonth := DaysInMonth(year, month)

	byDay := make(map[int]float64)
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			byDay[e.Date.Day()] += e.Amount
		}
	}
	for _, s := range subs {
		if s.Active {
			byDay[ClampDueDay(s.DueDay, daysInMonth)] += s.Amount
		}
	}

	days := make([]model.DailySpend, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, model.DailySpend{
			Day:      d,
			Date:     time.Date(year, month, d, 0, 0, 0, 0, time.Local),
			Amount:   byDay[d],
			IsFuture: d > today,
		})
	}

	return days
}
