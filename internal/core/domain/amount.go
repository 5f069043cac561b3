package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmountIntegerDigits bounds amounts below 10^18.
const MaxAmountIntegerDigits = 18

// maxCoefficientBits caps the coefficient before it is formatted (about 77 digits).
const maxCoefficientBits = 256

var (
	errAmountTooLarge    = fmt.Errorf("amount is too large (at most %d integer digits)", MaxAmountIntegerDigits)
	errAmountTooPrecise  = fmt.Errorf("amount has too many significant digits (at most %d)", RatePrecision)
	errAmountTooFine     = fmt.Errorf("amount has too many fractional digits (at most %d)", RatePrecision)
	errAmountNotPositive = errors.New("amount must be greater than zero")
)

// CheckAmount reports whether amount is a positive number that fits
// RatePrecision significant digits, at most RatePrecision fractional digits
// and at most MaxAmountIntegerDigits integer digits. Trailing zeros do not
// count. The exponent is checked before any digits are materialized.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errAmountNotPositive
	}

	exp := int64(amount.Exponent())
	if exp >= MaxAmountIntegerDigits {
		return errAmountTooLarge
	}
	coef := amount.Coefficient()
	if coef.BitLen() > maxCoefficientBits {
		return errAmountTooPrecise
	}

	digits := coef.String()
	trimmed := strings.TrimRight(digits, "0")
	exp += int64(len(digits) - len(trimmed))
	significant := int64(len(trimmed))

	switch {
	case significant+exp > MaxAmountIntegerDigits:
		return errAmountTooLarge
	case significant > int64(RatePrecision):
		return errAmountTooPrecise
	case exp < -int64(RatePrecision):
		return errAmountTooFine
	}
	return nil
}
