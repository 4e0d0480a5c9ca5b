// Package pipeline turns expense and subscription snapshots into
// forecasts, aggregates, and insights. Every function is pure: the
// caller supplies the snapshot and the clock (day of month, days in
// month), and repeated calls with the same inputs give the same output.
package pipeline

import (
	"sort"
	"time"

	"github.com/moneymind/moneymind/internal/model"
)

// FilterMonth returns the expenses dated within the given year and month.
func FilterMonth(expenses []model.Expense, year int, month time.Month) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			result = append(result, e)
		}
	}
	return result
}

// ActiveSubscriptions returns only the subscriptions that are currently active.
func ActiveSubscriptions(subs []model.Subscription) []model.Subscription {
	var result []model.Subscription
	for _, s := range subs {
		if s.Active {
			result = append(result, s)
		}
	}
	return result
}

// TotalAmount sums the amounts of the given expenses.
func TotalAmount(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// SubscriptionCost sums the monthly cost of active subscriptions.
func SubscriptionCost(subs []model.Subscription) float64 {
	var total float64
	for _, s := range subs {
		if s.Active {
			total += s.Amount
		}
	}
	return total
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDueDay clamps a billing day to the last day of the month, so a
// subscription due on the 31st still bills in a 30-day month.
func ClampDueDay(dueDay, daysInMonth int) int {
	if dueDay > daysInMonth {
		return daysInMonth
	}
	return dueDay
}

// UpcomingSubscriptions returns active subscriptions due within the next
// withinDays days, nearest first. A due day earlier in the month than
// today wraps into next month.
func UpcomingSubscriptions(subs []model.Subscription, today, daysInMonth, withinDays int) []model.UpcomingSubscription {
	var result []model.UpcomingSubscription
	for _, s := range subs {
		if !s.Active {
			continue
		}
		diff := ClampDueDay(s.DueDay, daysInMonth) - today
		if diff < 0 {
			diff = daysInMonth - today + s.DueDay
		}
		if diff >= 0 && diff <= withinDays {
			result = append(result, model.UpcomingSubscription{Subscription: s, DaysUntilDue: diff})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysUntilDue < result[j].DaysUntilDue
	})
	return result
}
