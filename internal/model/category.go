package model

import "strings"

// Category is one of the fixed spending categories.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGroceries      Category = "Groceries"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills & Utilities"
	CategorySubscription   Category = "Subscription"
	CategoryHealth         Category = "Health"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryRentHousing    Category = "Rent & Housing"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryGifts          Category = "Gifts & Donations"
	CategoryInsurance      Category = "Insurance"
	CategoryInvestments    Category = "Investments"
	CategoryOther          Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategorySubscription,
	CategoryHealth,
	CategoryEducation,
	CategoryTravel,
	CategoryRentHousing,
	CategoryPersonalCare,
	CategoryGifts,
	CategoryInsurance,
	CategoryInvestments,
	CategoryOther,
}

// ParseCategory matches a category name case-insensitively.
// Returns CategoryOther and false when the name is unknown.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return CategoryOther, false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var categoryIcons = map[Category]string{
	CategoryFoodDining:     "🍽️",
	CategoryGroceries:      "🛒",
	CategoryTransportation: "🚗",
	CategoryShopping:       "🛍️",
	CategoryEntertainment:  "🎬",
	CategoryBills:          "💡",
	CategorySubscription:   "🔄",
	CategoryHealth:         "💊",
	CategoryEducation:      "📚",
	CategoryTravel:         "✈️",
	CategoryRentHousing:    "🏠",
	CategoryPersonalCare:   "💇",
	CategoryGifts:          "🎁",
	CategoryInsurance:      "🛡️",
	CategoryInvestments:    "📈",
	CategoryOther:          "📦",
}

var categoryColors = map[Category]string{
	CategoryFoodDining:     "#ff6b6b",
	CategoryGroceries:      "#84cc16",
	CategoryTransportation: "#4ecdc4",
	CategoryShopping:       "#a855f7",
	CategoryEntertainment:  "#ff9f43",
	CategoryBills:          "#fbbf24",
	CategorySubscription:   "#6366f1",
	CategoryHealth:         "#f472b6",
	CategoryEducation:      "#38bdf8",
	CategoryTravel:         "#34d399",
	CategoryRentHousing:    "#fb923c",
	CategoryPersonalCare:   "#e879f9",
	CategoryGifts:          "#f87171",
	CategoryInsurance:      "#60a5fa",
	CategoryInvestments:    "#22d3ee",
	CategoryOther:          "#94a3b8",
}

// Icon returns the display emoji for the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return categoryIcons[CategoryOther]
}

// Color returns the display hex color for the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}
