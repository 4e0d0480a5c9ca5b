package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/moneymind/moneymind/internal/model"
)

// MoneyFormatter renders an amount in the user's currency for insight copy.
type MoneyFormatter func(amount float64) string

// GenerateInsights runs a fixed battery of pattern detectors over one
// month's expenses and the subscriptions. Each detector appends zero or
// one insight; append order is final order. With no expenses at all it
// returns a single empty-state insight and nothing else.
func GenerateInsights(
	expenses []model.Expense,
	subs []model.Subscription,
	budget float64,
	dayOfMonth int,
	daysInMonth int,
	money MoneyFormatter,
) []model.Insight {
	if len(expenses) == 0 {
		return []model.Insight{{
			Type:     "info",
			Icon:     "💡",
			Title:    "Start Tracking",
			Body:     "Add your first expense to receive personalized insights about your spending habits.",
			Severity: model.SeverityInfo,
		}}
	}

	var insights []model.Insight
	totalSpend := TotalAmount(expenses)

	if ins, ok := topCategoryInsight(expenses, totalSpend, money); ok {
		insights = append(insights, ins)
	}
	if ins, ok := budgetPaceInsight(totalSpend, budget, dayOfMonth, daysInMonth, money); ok {
		insights = append(insights, ins)
	}
	insights = append(insights, subscriptionInsights(subs, money)...)
	if ins, ok := weekdayPatternInsight(expenses, money); ok {
		insights = append(insights, ins)
	}
	if ins, ok := frequencyInsight(expenses); ok {
		insights = append(insights, ins)
	}
	if ins, ok := largeExpenseInsight(expenses, totalSpend, money); ok {
		insights = append(insights, ins)
	}
	if ins, ok := savingsPotentialInsight(subs, budget, money); ok {
		insights = append(insights, ins)
	}
	if len(expenses) < 5 {
		insights = append(insights, engagementInsight(len(expenses)))
	}

	return insights
}

// categoryTotals sums per-category spend, returning categories in
// first-appearance order so ties resolve deterministically.
func categoryTotals(expenses []model.Expense) ([]model.Category, map[model.Category]float64) {
	totals := make(map[model.Category]float64)
	var order []model.Category
	for _, e := range expenses {
		if _, ok := totals[e.Category]; !ok {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}
	return order, totals
}

func topCategoryInsight(expenses []model.Expense, totalSpend float64, money MoneyFormatter) (model.Insight, bool) {
	order, totals := categoryTotals(expenses)
	if len(order) == 0 || totalSpend == 0 {
		return model.Insight{}, false
	}

	topCat := order[0]
	for _, cat := range order[1:] {
		if totals[cat] > totals[topCat] {
			topCat = cat
		}
	}
	topAmount := totals[topCat]
	percentage := int(math.Round(topAmount / totalSpend * 100))

	verdict := "This seems proportional to a balanced budget."
	severity := model.SeverityInfo
	if percentage > 40 {
		verdict = "This is a significant portion, so consider if there are ways to optimize."
		severity = model.SeverityWarning
	}

	return model.Insight{
		Type:  "pattern",
		Icon:  topCat.Icon(),
		Title: fmt.Sprintf("%s is your top spending category", topCat),
		Body: fmt.Sprintf("You spend %d%% of your monthly expenses on %s (%s). %s",
			percentage, topCat, money(topAmount), verdict),
		Severity: severity,
		Metric:   fmt.Sprintf("%d%%", percentage),
	}, true
}

func budgetPaceInsight(totalSpend, budget float64, dayOfMonth, daysInMonth int, money MoneyFormatter) (model.Insight, bool) {
	if budget <= 0 || dayOfMonth <= 0 || daysInMonth <= 0 {
		return model.Insight{}, false
	}

	percentUsed := int(math.Round(totalSpend / budget * 100))
	monthProgress := int(math.Round(float64(dayOfMonth) / float64(daysInMonth) * 100))
	projected := totalSpend * float64(daysInMonth) / float64(dayOfMonth)

	switch {
	case percentUsed > monthProgress+15:
		return model.Insight{
			Type:  "warning",
			Icon:  "⚠️",
			Title: "Spending ahead of schedule",
			Body: fmt.Sprintf("You've used %d%% of your budget but we're only %d%% through the month. At this rate, you'll exceed your budget by %s.",
				percentUsed, monthProgress, money(projected-budget)),
			Severity: model.SeverityDanger,
			Metric:   fmt.Sprintf("%d%% used", percentUsed),
		}, true
	case percentUsed < monthProgress-20:
		return model.Insight{
			Type:  "positive",
			Icon:  "🎯",
			Title: "Under budget, great discipline!",
			Body: fmt.Sprintf("You've only used %d%% of your budget at %d%% through the month. You could save approximately %s this month.",
				percentUsed, monthProgress, money(budget-projected)),
			Severity: model.SeveritySuccess,
			Metric:   fmt.Sprintf("%d%% used", percentUsed),
		}, true
	}
	return model.Insight{}, false
}

// subscriptionInsights emits up to two insights: a load warning at three
// or more active subscriptions, and a note about the first category
// holding two or more of them.
func subscriptionInsights(subs []model.Subscription, money MoneyFormatter) []model.Insight {
	active := ActiveSubscriptions(subs)
	if len(active) == 0 {
		return nil
	}

	var insights []model.Insight
	subTotal := SubscriptionCost(active)

	if len(active) >= 3 {
		insights = append(insights, model.Insight{
			Type:  "suggestion",
			Icon:  "🔄",
			Title: fmt.Sprintf("%d active subscriptions costing %s/month", len(active), money(subTotal)),
			Body: fmt.Sprintf("That's %s per year. Review your subscriptions: even cutting one could save you %s/year. Do you actually use all of them?",
				money(subTotal*12), money(active[len(active)-1].Amount*12)),
			Severity: model.SeverityWarning,
			Metric:   money(subTotal) + "/mo",
		})
	}

	counts := make(map[model.Category]int)
	var order []model.Category
	for _, s := range active {
		if _, ok := counts[s.Category]; !ok {
			order = append(order, s.Category)
		}
		counts[s.Category]++
	}

	for _, cat := range order {
		if counts[cat] < 2 {
			continue
		}
		var names []string
		var dupeTotal float64
		for _, s := range active {
			if s.Category == cat {
				names = append(names, s.Name)
				dupeTotal += s.Amount
			}
		}
		insights = append(insights, model.Insight{
			Type:  "suggestion",
			Icon:  "🔍",
			Title: fmt.Sprintf("%d %s subscriptions detected", counts[cat], cat),
			Body: fmt.Sprintf("You have %d subscriptions in %s: %s. Combined cost: %s/month. Could you consolidate to just one?",
				counts[cat], cat, strings.Join(names, ", "), money(dupeTotal)),
			Severity: model.SeverityInfo,
			Metric:   money(dupeTotal) + "/mo",
		})
		break // only the first duplicate category
	}

	return insights
}

func weekdayPatternInsight(expenses []model.Expense, money MoneyFormatter) (model.Insight, bool) {
	if len(expenses) < 5 {
		return model.Insight{}, false
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, e := range expenses {
		day := e.Date.Weekday().String()
		if _, ok := counts[day]; !ok {
			order = append(order, day)
		}
		totals[day] += e.Amount
		counts[day]++
	}

	topDay := order[0]
	topAvg := totals[topDay] / float64(counts[topDay])
	for _, day := range order[1:] {
		avg := totals[day] / float64(counts[day])
		if avg > topAvg {
			topDay, topAvg = day, avg
		}
	}

	return model.Insight{
		Type:  "pattern",
		Icon:  "📅",
		Title: fmt.Sprintf("%ss are your highest-spend days", topDay),
		Body: fmt.Sprintf("You average %s on %ss. Consider planning your %s activities more carefully or setting a daily limit.",
			money(topAvg), topDay, topDay),
		Severity: model.SeverityInfo,
		Metric:   money(topAvg),
	}, true
}

func frequencyInsight(expenses []model.Expense) (model.Insight, bool) {
	if len(expenses) < 3 {
		return model.Insight{}, false
	}

	counts := make(map[model.Category]int)
	var order []model.Category
	for _, e := range expenses {
		if _, ok := counts[e.Category]; !ok {
			order = append(order, e.Category)
		}
		counts[e.Category]++
	}

	topCat := order[0]
	for _, cat := range order[1:] {
		if counts[cat] > counts[topCat] {
			topCat = cat
		}
	}
	if counts[topCat] < 3 {
		return model.Insight{}, false
	}

	return model.Insight{
		Type:  "pattern",
		Icon:  topCat.Icon(),
		Title: fmt.Sprintf("%d transactions in %s this month", counts[topCat], topCat),
		Body: fmt.Sprintf("%s is your most frequent expense category. Small purchases add up, so consider bundling or reducing frequency.",
			topCat),
		Severity: model.SeverityInfo,
		Metric:   fmt.Sprintf("%d transactions", counts[topCat]),
	}, true
}

func largeExpenseInsight(expenses []model.Expense, totalSpend float64, money MoneyFormatter) (model.Insight, bool) {
	if len(expenses) < 3 {
		return model.Insight{}, false
	}

	avg := totalSpend / float64(len(expenses))
	if avg <= 0 {
		return model.Insight{}, false
	}

	large := make([]model.Expense, 0)
	for _, e := range expenses {
		if e.Amount > avg*2.5 {
			large = append(large, e)
		}
	}
	if len(large) == 0 {
		return model.Insight{}, false
	}

	sort.SliceStable(large, func(i, j int) bool {
		return large[i].Amount > large[j].Amount
	})
	largest := large[0]

	label := largest.Note
	if label == "" {
		label = string(largest.Category)
	}

	return model.Insight{
		Type:  "alert",
		Icon:  "💰",
		Title: "Large expense detected",
		Body: fmt.Sprintf("%q at %s is %dx your average expense of %s.",
			label, money(largest.Amount), int(math.Round(largest.Amount/avg)), money(avg)),
		Severity: model.SeverityWarning,
		Metric:   money(largest.Amount),
	}, true
}

func savingsPotentialInsight(subs []model.Subscription, budget float64, money MoneyFormatter) (model.Insight, bool) {
	if budget <= 0 || len(subs) == 0 {
		return model.Insight{}, false
	}

	potential := math.Round(SubscriptionCost(subs) * 0.3)
	if potential <= 0 {
		return model.Insight{}, false
	}

	return model.Insight{
		Type:  "suggestion",
		Icon:  "💡",
		Title: "Potential monthly savings",
		Body: fmt.Sprintf("By reviewing and optimizing your subscriptions, you could potentially save up to %s/month (%s/year). Even small cuts compound over time.",
			money(potential), money(potential*12)),
		Severity: model.SeveritySuccess,
		Metric:   money(potential) + "/mo",
	}, true
}

func engagementInsight(count int) model.Insight {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return model.Insight{
		Type:  "tip",
		Icon:  "🚀",
		Title: "Keep logging for better insights",
		Body: fmt.Sprintf("You have %d expense%s logged. The more data MoneyMind has, the more accurate and personalized your insights become. Aim for logging daily.",
			count, plural),
		Severity: model.SeverityInfo,
	}
}
