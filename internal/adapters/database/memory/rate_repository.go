// Package memory keeps rates in process memory. It backs tests and runs
// without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type row struct {
	rate      string
	fetchedAt int64
	source    string
}

// RateRepository is an in-memory rate store. Rows are kept with the same
// representation as the SQL store: decimal text and epoch seconds.
type RateRepository struct {
	mu     sync.RWMutex
	rows   map[string]map[string]row // base -> symbol -> row
	closed bool
}

var _ portsrepo.RateRepositoryFacade = (*RateRepository)(nil)

func NewRateRepository() *RateRepository {
	return &RateRepository{rows: make(map[string]map[string]row)}
}

func (r *RateRepository) EnsureSchema(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return apperrors.ErrClosed
	}
	return nil
}

func (r *RateRepository) UpsertRates(ctx context.Context, base string, rates domain.Rates, source string, fetchedAt time.Time) error {
	base = strings.ToUpper(base)
	epoch := fetchedAt.UTC().Unix()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return apperrors.ErrClosed
	}

	symbols, ok := r.rows[base]
	if !ok {
		symbols = make(map[string]row, len(rates))
		r.rows[base] = symbols
	}
	for sym, rate := range rates {
		symbols[sym] = row{rate: rate.String(), fetchedAt: epoch, source: source}
	}
	return nil
}

func (r *RateRepository) LastFetchMeta(ctx context.Context, base string) (*domain.FetchMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, apperrors.ErrClosed
	}

	var latest *row
	for _, rw := range r.rows[strings.ToUpper(base)] {
		if latest == nil || rw.fetchedAt > latest.fetchedAt {
			rw := rw
			latest = &rw
		}
	}
	if latest == nil {
		return nil, nil
	}
	return &domain.FetchMeta{FetchedAt: time.Unix(latest.fetchedAt, 0).UTC(), Source: latest.source}, nil
}

func (r *RateRepository) GetRates(ctx context.Context, base string, symbols []string) (domain.Rates, error) {
	base = strings.ToUpper(base)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, apperrors.ErrClosed
	}

	out := make(domain.Rates, len(symbols))
	stored := r.rows[base]
	for _, sym := range symbols {
		if sym == base {
			out[sym] = decimal.NewFromInt(1)
			continue
		}
		if rw, ok := stored[sym]; ok {
			out[sym] = decimal.RequireFromString(rw.rate)
		}
	}
	return out, nil
}

func (r *RateRepository) ListRates(ctx context.Context, base, afterSymbol string, limit int) ([]domain.RateRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	base = strings.ToUpper(base)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, apperrors.ErrClosed
	}

	stored := r.rows[base]
	symbols := make([]string, 0, len(stored))
	for sym := range stored {
		if sym > afterSymbol {
			symbols = append(symbols, sym)
		}
	}
	sort.Strings(symbols)
	if len(symbols) > limit {
		symbols = symbols[:limit]
	}

	records := make([]domain.RateRecord, 0, len(symbols))
	for _, sym := range symbols {
		rw := stored[sym]
		records = append(records, domain.RateRecord{
			Base:      base,
			Symbol:    sym,
			Rate:      decimal.RequireFromString(rw.rate),
			FetchedAt: time.Unix(rw.fetchedAt, 0).UTC(),
			Source:    rw.source,
		})
	}
	return records, nil
}

// Close marks the store closed; later calls fail with apperrors.ErrClosed.
func (r *RateRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
