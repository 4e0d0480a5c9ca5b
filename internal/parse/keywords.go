package parse

import "github.com/moneymind/moneymind/internal/model"

// categoryKeywords maps each category to the keywords that vote for it.
// Scoring sums the character length of every keyword found in the input,
// so longer, more specific phrases ("whole foods") outweigh short generic
// ones ("eat"). Entries are evaluated in declaration order; the first
// category to reach a strictly higher score wins ties.
//
// This table is fixed at build time and never mutated, so it is safe to
// share across concurrent callers.
type categoryEntry struct {
	Category model.Category
	Keywords []string
}

var categoryKeywords = []categoryEntry{
	{model.CategoryFoodDining, []string{
		"food", "restaurant", "lunch", "dinner", "breakfast", "pizza", "burger",
		"coffee", "cafe", "starbucks", "mcdonalds", "kfc", "subway", "sushi",
		"takeout", "delivery", "ubereats", "doordash", "grubhub", "eat",
		"meal", "dining", "snack", "drink", "bar", "pub", "noodles", "chicken",
		"rice", "soup", "taco", "brunch", "bistro", "deli", "bakery",
	}},
	{model.CategoryGroceries, []string{
		"grocery", "groceries", "supermarket", "walmart", "costco", "aldi",
		"lidl", "tesco", "kroger", "safeway", "whole foods", "vegetables",
		"fruits", "meat", "milk", "eggs", "bread", "produce", "market",
	}},
	{model.CategoryTransportation, []string{
		"uber", "lyft", "taxi", "cab", "bus", "train", "metro", "subway",
		"gas", "fuel", "petrol", "diesel", "parking", "toll", "car",
		"auto", "vehicle", "commute", "transport", "flight", "airline",
		"bolt", "grab", "ride", "fare",
	}},
	{model.CategoryShopping, []string{
		"amazon", "shop", "shopping", "buy", "purchase", "clothes", "shoes",
		"electronics", "gadget", "phone", "laptop", "computer", "tablet",
		"furniture", "decor", "ikea", "target", "mall", "store", "ebay",
		"aliexpress", "fashion", "accessories", "jewelry",
	}},
	{model.CategoryEntertainment, []string{
		"movie", "cinema", "theater", "concert", "game", "gaming", "steam",
		"playstation", "xbox", "nintendo", "tickets", "show", "party",
		"club", "bowling", "amusement", "park", "festival", "event",
	}},
	{model.CategoryBills, []string{
		"electricity", "electric", "power", "water", "gas bill", "internet",
		"wifi", "broadband", "phone bill", "mobile plan", "utility",
		"utilities", "bill", "cable", "sewage", "trash", "waste",
	}},
	{model.CategorySubscription, []string{
		"netflix", "spotify", "hulu", "disney", "hbo", "apple music",
		"youtube premium", "amazon prime", "subscription", "membership",
		"monthly", "renewal", "premium", "pro plan", "annual plan",
		"chatgpt", "openai", "github", "figma", "notion", "slack",
		"adobe", "microsoft 365", "icloud", "dropbox",
	}},
	{model.CategoryHealth, []string{
		"doctor", "hospital", "clinic", "pharmacy", "medicine", "drug",
		"health", "medical", "dental", "dentist", "therapy", "gym",
		"fitness", "supplement", "vitamin", "prescription", "checkup",
	}},
	{model.CategoryEducation, []string{
		"course", "class", "tuition", "school", "university", "college",
		"book", "books", "textbook", "udemy", "coursera", "skillshare",
		"education", "training", "workshop", "seminar", "tutorial",
	}},
	{model.CategoryTravel, []string{
		"hotel", "airbnb", "hostel", "booking", "flight", "airline",
		"travel", "vacation", "trip", "resort", "cruise", "luggage",
		"passport", "visa", "airport",
	}},
	{model.CategoryRentHousing, []string{
		"rent", "mortgage", "lease", "apartment", "housing", "house",
		"landlord", "property", "maintenance", "repair", "plumber",
		"electrician", "renovation",
	}},
	{model.CategoryPersonalCare, []string{
		"haircut", "salon", "spa", "barber", "beauty", "cosmetics",
		"makeup", "skincare", "massage", "manicure", "pedicure",
		"grooming", "shampoo", "fragrance", "perfume",
	}},
	{model.CategoryGifts, []string{
		"gift", "present", "donation", "charity", "birthday", "wedding",
		"anniversary", "tip", "giving",
	}},
	{model.CategoryInsurance, []string{
		"insurance", "premium", "coverage", "policy", "life insurance",
		"car insurance", "health insurance", "home insurance",
	}},
	{model.CategoryInvestments, []string{
		"investment", "invest", "stock", "crypto", "bitcoin", "ethereum",
		"mutual fund", "etf", "bond", "savings", "retirement", "401k",
		"portfolio", "dividend", "trading",
	}},
}
