package domain

import "github.com/shopspring/decimal"

// PivotCurrency is the currency every provider chain quotes against.
const PivotCurrency = "USD"

// RatePrecision is the number of fractional digits kept when dividing rates.
const RatePrecision int32 = 28

// ResultPlaces is the number of fractional digits in a conversion result.
const ResultPlaces int32 = 2

var one = decimal.NewFromInt(1)

// Invert returns 1/d at RatePrecision.
func Invert(d decimal.Decimal) decimal.Decimal {
	return one.DivRound(d, RatePrecision)
}

// Ratio returns num/den at RatePrecision.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	return num.DivRound(den, RatePrecision)
}
