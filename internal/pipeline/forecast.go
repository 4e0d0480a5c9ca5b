package pipeline

import (
	"math"

	"github.com/moneymind/moneymind/internal/model"
)

// ComputeForecast computes burn rate, projections, and budget tracking
// from one month's expenses and the active subscriptions. A budget of 0
// means no budget is set, which disables utilization and runway.
func ComputeForecast(
	expenses []model.Expense,
	subs []model.Subscription,
	budget float64,
	dayOfMonth int,
	daysInMonth int,
) model.ForecastStats {
	active := ActiveSubscriptions(subs)

	stats := model.ForecastStats{
		TotalSpend:       TotalAmount(expenses),
		ExpenseCount:     len(expenses),
		SubscriptionCost: SubscriptionCost(subs),
		ActiveSubs:       len(active),
		Budget:           budget,
	}

	if len(expenses) > 0 && dayOfMonth > 0 {
		stats.BurnRate = stats.TotalSpend / float64(dayOfMonth)
		stats.ProjectedMonthSpend = stats.BurnRate * float64(daysInMonth)
	}

	if budget > 0 {
		stats.BudgetUtilizationPct = int(math.Round(stats.TotalSpend / budget * 100))
	}

	// Remaining counts both variable spend and the full subscription load.
	stats.RemainingBudget = budget - (stats.TotalSpend + stats.SubscriptionCost)

	stats.RunwayDays = runwayDays(stats.TotalSpend, stats.SubscriptionCost, budget, dayOfMonth, daysInMonth)

	return stats
}

// runwayDays answers "how many days does the monthly budget represent at
// the current combined daily spend rate?" Subscriptions are amortized
// over the whole month. Returns -1 when no meaningful estimate exists.
func runwayDays(totalSpend, subCost, budget float64, dayOfMonth, daysInMonth int) int {
	if budget <= 0 || dayOfMonth <= 0 {
		return -1
	}

	var dailyVariable float64
	if totalSpend > 0 {
		dailyVariable = totalSpend / float64(dayOfMonth)
	}
	var dailySubs float64
	if subCost > 0 && daysInMonth > 0 {
		dailySubs = subCost / float64(daysInMonth)
	}

	dailyTotal := dailyVariable + dailySubs
	if dailyTotal <= 0 {
		return -1
	}

	runway := int(math.Floor(budget / dailyTotal))
	if runway < 0 {
		return -1
	}
	return runway
}
