package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Display languages.
const (
	LangEnglish = "eng"
	LangRussian = "ru"
)

// Display precision for amounts and rates.
const (
	AmountDisplayPlaces int32 = 3
	RateDisplayPlaces   int32 = 6
)

// FormatWithPrecision formats an amount with exactly precision decimal places,
// rounding half away from zero.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}

// FormatAmount formats an amount for display with grouped thousands.
// English uses "1,234.567", Russian uses "1 234,567".
func FormatAmount(amount decimal.Decimal, lang string) string {
	fixed := FormatWithPrecision(amount, AmountDisplayPlaces)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	thousands, point := ",", "."
	if lang == LangRussian {
		thousands, point = " ", ","
	}
	return sign + groupThousands(intPart, thousands) + point + frac
}

// FormatRate formats a rate for display without grouping.
func FormatRate(rate decimal.Decimal, lang string) string {
	fixed := FormatWithPrecision(rate, RateDisplayPlaces)
	if lang == LangRussian {
		return strings.Replace(fixed, ".", ",", 1)
	}
	return fixed
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
