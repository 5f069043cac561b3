package providers

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// RateProvider fetches rates expressed as units of each currency per 1 USD.
type RateProvider interface {
	// Name labels the provider in source strings and logs.
	Name() string

	// FetchRates returns the provider's rates or an error wrapping apperrors.ErrProvider.
	FetchRates(ctx context.Context) (domain.Rates, error)
}

// BaseRateProvider fetches rates relative to an arbitrary base currency.
type BaseRateProvider interface {
	Name() string
	FetchRatesForBase(ctx context.Context, base string) (domain.Rates, error)
}

// RateSource produces the full rate set for a reference base together with a source label.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (domain.Rates, string, error)
}
