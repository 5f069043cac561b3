package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterSvc defines conversion operations
type ConverterSvc interface {
	// Convert converts amount from one currency to another. Inputs may be
	// codes, names or symbols.
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.ConversionResult, error)

	// ConvertPair parses a free-form pair such as "usd to eur" and converts amount.
	ConvertPair(ctx context.Context, pair string, amount decimal.Decimal) (*domain.ConversionResult, error)
}

// RateReaderSvc defines read operations for stored rates
type RateReaderSvc interface {
	// ReferenceBase is the currency all stored rates are relative to.
	ReferenceBase() string

	// ListRates returns stored rates for the reference base ordered by symbol.
	ListRates(ctx context.Context, afterSymbol string, limit int) ([]domain.RateRecord, error)
}

// RateRefresherSvc defines operations that refresh stored rates
type RateRefresherSvc interface {
	// ForceUpdate refreshes rates regardless of their age.
	ForceUpdate(ctx context.Context) (*domain.FetchMeta, error)

	// Warmup refreshes rates only when none are stored or they are stale.
	Warmup(ctx context.Context) (*domain.FetchMeta, error)
}

// ConverterSvcFacade combines all converter service interfaces
type ConverterSvcFacade interface {
	ConverterSvc
	RateReaderSvc
	RateRefresherSvc

	// Close releases the rate store. Calling it more than once is safe.
	Close() error
}

// ServiceContainer holds instances of all the application services.
type ServiceContainer struct {
	Converter ConverterSvcFacade
}
