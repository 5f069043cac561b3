package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Rates maps a currency code to the number of its units per one unit of a base currency.
type Rates map[string]decimal.Decimal

// Symbols returns the codes in r in ascending order.
func (r Rates) Symbols() []string {
	out := make([]string, 0, len(r))
	for sym := range r {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// RateRecord is one persisted row: 1 Base = Rate Symbol.
type RateRecord struct {
	Base      string          `json:"base"`
	Symbol    string          `json:"symbol"`
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source"`
}

// FetchMeta describes the most recent refresh stored for a base.
type FetchMeta struct {
	FetchedAt time.Time
	Source    string
}

// ConversionResult is the outcome of a single conversion. It is never persisted.
type ConversionResult struct {
	Base      string          `json:"base"`
	Quote     string          `json:"quote"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Result    decimal.Decimal `json:"result"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source"`
}
