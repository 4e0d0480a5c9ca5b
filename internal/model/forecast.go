package model

import "time"

// ForecastStats holds budget tracking and forecast data for one month.
type ForecastStats struct {
	TotalSpend          float64
	ExpenseCount        int
	BurnRate            float64 // average spend per elapsed day
	ProjectedMonthSpend float64
	SubscriptionCost    float64 // sum of active subscription amounts
	ActiveSubs          int
	Budget              float64 // 0 means no budget set
	BudgetUtilizationPct int    // 0 when budget unset
	RemainingBudget     float64
	RunwayDays          int // -1 when no meaningful estimate exists
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category   Category
	Amount     float64
	Percentage int // share of the combined total, rounded
}

// DailySpend holds one calendar day's spending for the chart.
type DailySpend struct {
	Day      int
	Date     time.Time
	Amount   float64
	IsFuture bool
}

// UpcomingSubscription pairs a subscription with its days until due.
type UpcomingSubscription struct {
	Subscription
	DaysUntilDue int
}
