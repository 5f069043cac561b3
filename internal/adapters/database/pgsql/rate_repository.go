package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Mirrors migrations/000001_create_rates_table.up.sql.
const ensureSchemaSQL = `
	CREATE TABLE IF NOT EXISTS rates (
		base       TEXT   NOT NULL,
		symbol     TEXT   NOT NULL,
		rate       TEXT   NOT NULL,
		fetched_at BIGINT NOT NULL,
		source     TEXT   NOT NULL,
		PRIMARY KEY (base, symbol)
	);
	CREATE INDEX IF NOT EXISTS idx_rates_base_fetched_at ON rates (base, fetched_at);
`

const upsertRateSQL = `
	INSERT INTO rates (base, symbol, rate, fetched_at, source)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (base, symbol) DO UPDATE
	SET rate = EXCLUDED.rate, fetched_at = EXCLUDED.fetched_at, source = EXCLUDED.source
`

// PgxRateRepository stores rates in Postgres. Rates are kept as decimal text
// and fetch times as epoch seconds.
type PgxRateRepository struct {
	BaseRepository
	closeOnce sync.Once
}

var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

// NewPgxRateRepository creates a PgxRateRepository. The repository owns pool
// and closes it on Close.
func NewPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// EnsureSchema creates the rates table and index if they are missing.
func (r *PgxRateRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, ensureSchemaSQL); err != nil {
		return apperrors.NewAppError(500, "failed to ensure rates schema", err)
	}
	return nil
}

// UpsertRates replaces the stored rows for every symbol in rates.
func (r *PgxRateRepository) UpsertRates(ctx context.Context, base string, rates domain.Rates, source string, fetchedAt time.Time) error {
	base = strings.ToUpper(base)
	epoch := fetchedAt.UTC().Unix()

	batch := &pgx.Batch{}
	for _, sym := range rates.Symbols() {
		batch.Queue(upsertRateSQL, base, sym, rates[sym].String(), epoch, source)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to upsert rates", err)
		}
	}
	if err := br.Close(); err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to upsert rates", err)
	}

	return r.Commit(ctx, tx)
}

// LastFetchMeta returns the newest fetch time and its source for base.
func (r *PgxRateRepository) LastFetchMeta(ctx context.Context, base string) (*domain.FetchMeta, error) {
	query := `
		SELECT fetched_at, source
		FROM rates
		WHERE base = $1
		ORDER BY fetched_at DESC
		LIMIT 1
	`
	var (
		epoch  int64
		source string
	)
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(base)).Scan(&epoch, &source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to read last fetch", err)
	}
	return &domain.FetchMeta{FetchedAt: time.Unix(epoch, 0).UTC(), Source: source}, nil
}

// GetRates returns the stored rates among symbols, with base itself at 1.
func (r *PgxRateRepository) GetRates(ctx context.Context, base string, symbols []string) (domain.Rates, error) {
	base = strings.ToUpper(base)
	out := make(domain.Rates, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}

	query := `
		SELECT symbol, rate
		FROM rates
		WHERE base = $1 AND symbol = ANY($2)
	`
	rows, err := r.Pool.Query(ctx, query, base, symbols)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get rates", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sym, raw string
		if err := rows.Scan(&sym, &raw); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate", err)
		}
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("stored rate for %s is not a decimal", sym), err)
		}
		out[sym] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rates", err)
	}

	for _, sym := range symbols {
		if sym == base {
			out[sym] = decimal.NewFromInt(1)
		}
	}
	return out, nil
}

// ListRates pages through the rows for base ordered by symbol.
func (r *PgxRateRepository) ListRates(ctx context.Context, base, afterSymbol string, limit int) ([]domain.RateRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := `
		SELECT base, symbol, rate, fetched_at, source
		FROM rates
		WHERE base = $1 AND symbol > $2
		ORDER BY symbol
		LIMIT $3
	`
	rows, err := r.Pool.Query(ctx, query, strings.ToUpper(base), afterSymbol, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rates", err)
	}
	defer rows.Close()

	records := make([]domain.RateRecord, 0, limit)
	for rows.Next() {
		var (
			rec   domain.RateRecord
			raw   string
			epoch int64
		)
		if err := rows.Scan(&rec.Base, &rec.Symbol, &raw, &epoch, &rec.Source); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate", err)
		}
		if rec.Rate, err = decimal.NewFromString(raw); err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("stored rate for %s is not a decimal", rec.Symbol), err)
		}
		rec.FetchedAt = time.Unix(epoch, 0).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rates", err)
	}
	return records, nil
}

// Close closes the underlying pool once.
func (r *PgxRateRepository) Close() error {
	r.closeOnce.Do(func() {
		if r.Pool != nil {
			r.Pool.Close()
		}
	})
	return nil
}
