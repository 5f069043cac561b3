package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountCleaner drops digit grouping and accepts a comma as the decimal mark.
var amountCleaner = strings.NewReplacer(" ", "", "\u00a0", "", "_", "", ",", ".")

// ParseAmount parses user-typed amounts such as "1 000,50" or "1_000.5".
// The amount must be greater than zero and within domain.CheckAmount limits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, raw)
	}
	if err := domain.CheckAmount(amount); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return amount, nil
}
