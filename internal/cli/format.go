// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// currencySymbols maps ISO currency codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥",
	"INR": "₹", "NGN": "₦", "BRL": "R$", "CAD": "C$",
	"AUD": "A$", "KES": "KSh", "ZAR": "R", "MXN": "Mex$",
	"PHP": "₱", "KRW": "₩", "SEK": "kr",
}

// Currencies returns the supported ISO currency codes in a stable order.
func Currencies() []string {
	return []string{
		"USD", "EUR", "GBP", "JPY", "INR", "NGN", "BRL", "CAD",
		"AUD", "KES", "ZAR", "MXN", "PHP", "KRW", "SEK",
	}
}

// CurrencySymbol returns the symbol for a currency code, defaulting to "$".
func CurrencySymbol(currency string) string {
	if sym, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return sym
	}
	return "$"
}

// FormatMoney formats an amount in the given currency. JPY and KRW have
// no minor units and render as whole numbers.
func FormatMoney(amount float64, currency string) string {
	symbol := CurrencySymbol(currency)
	abs := math.Abs(amount)

	var formatted string
	switch strings.ToUpper(currency) {
	case "JPY", "KRW":
		formatted = FormatNumber(int64(math.Round(abs)))
	default:
		whole := int64(abs)
		cents := int(math.Round((abs - float64(whole)) * 100))
		if cents == 100 {
			whole++
			cents = 0
		}
		formatted = fmt.Sprintf("%s.%02d", FormatNumber(whole), cents)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + symbol + formatted
}

// MoneyFormatter returns a formatting closure bound to one currency.
func MoneyFormatter(currency string) func(float64) string {
	return func(amount float64) string {
		return FormatMoney(amount, currency)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a rounded percentage value.
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// FormatRunway renders runway days, with a dash for the no-estimate sentinel.
func FormatRunway(days int) string {
	if days < 0 {
		return "n/a"
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
