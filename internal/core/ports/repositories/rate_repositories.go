package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// RateReader defines read operations for stored rates
type RateReader interface {
	// LastFetchMeta returns the most recent fetch for base, or nil when nothing is stored.
	LastFetchMeta(ctx context.Context, base string) (*domain.FetchMeta, error)

	// GetRates returns the stored rates for the requested symbols that exist.
	// A requested symbol equal to base is reported at exactly 1.
	GetRates(ctx context.Context, base string, symbols []string) (domain.Rates, error)

	// ListRates returns up to limit rows for base ordered by symbol, starting after afterSymbol.
	ListRates(ctx context.Context, base, afterSymbol string, limit int) ([]domain.RateRecord, error)
}

// RateWriter defines write operations for stored rates
type RateWriter interface {
	// UpsertRates writes one row per symbol, all sharing fetchedAt and source,
	// in a single transaction.
	UpsertRates(ctx context.Context, base string, rates domain.Rates, source string, fetchedAt time.Time) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
// with the store lifecycle.
type RateRepositoryFacade interface {
	RateReader
	RateWriter

	// EnsureSchema creates the rates table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the store. Calling it more than once is safe.
	Close() error
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
