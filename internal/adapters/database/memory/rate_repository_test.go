package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/adapters/database/memory"
	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rates() domain.Rates {
	return domain.Rates{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.90"),
		"RUB": decimal.RequireFromString("90.123456789012345678901234567"),
		"BTC": decimal.RequireFromString("0.000025"),
	}
}

func TestRateRepository_EmptyStore(t *testing.T) {
	repo := memory.NewRateRepository()
	ctx := context.Background()

	meta, err := repo.LastFetchMeta(ctx, "USD")
	require.NoError(t, err)
	assert.Nil(t, meta)

	got, err := repo.GetRates(ctx, "USD", []string{"USD", "EUR"})
	require.NoError(t, err)
	assert.Len(t, got, 1, "base is synthesized even without rows")
	assert.True(t, got["USD"].Equal(decimal.NewFromInt(1)))
}

func TestRateRepository_UpsertAndRead(t *testing.T) {
	repo := memory.NewRateRepository()
	ctx := context.Background()
	fetchedAt := time.Date(2024, 5, 10, 12, 30, 15, 999, time.UTC)

	require.NoError(t, repo.UpsertRates(ctx, "USD", rates(), "ECB+CoinGecko", fetchedAt))

	meta, err := repo.LastFetchMeta(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, fetchedAt.Truncate(time.Second), meta.FetchedAt)
	assert.Equal(t, "ECB+CoinGecko", meta.Source)

	got, err := repo.GetRates(ctx, "USD", []string{"EUR", "RUB", "XYZ"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "0.9", got["EUR"].String())
	assert.Equal(t, "90.123456789012345678901234567", got["RUB"].String(), "rates keep full precision")
}

func TestRateRepository_UpsertOverwrites(t *testing.T) {
	repo := memory.NewRateRepository()
	ctx := context.Background()
	first := time.Unix(1_700_000_000, 0).UTC()
	second := first.Add(13 * time.Hour)

	require.NoError(t, repo.UpsertRates(ctx, "USD", rates(), "ECB", first))
	require.NoError(t, repo.UpsertRates(ctx, "USD", domain.Rates{"EUR": decimal.RequireFromString("0.95")}, "Frankfurter(ECB)", second))

	meta, err := repo.LastFetchMeta(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, second, meta.FetchedAt)
	assert.Equal(t, "Frankfurter(ECB)", meta.Source)

	got, err := repo.GetRates(ctx, "USD", []string{"EUR", "BTC"})
	require.NoError(t, err)
	assert.Equal(t, "0.95", got["EUR"].String())
	assert.Equal(t, "0.000025", got["BTC"].String(), "symbols absent from a refresh keep their last value")
}

func TestRateRepository_BasesAreIsolated(t *testing.T) {
	repo := memory.NewRateRepository()
	ctx := context.Background()
	require.NoError(t, repo.UpsertRates(ctx, "USD", rates(), "ECB", time.Now()))

	meta, err := repo.LastFetchMeta(ctx, "EUR")
	require.NoError(t, err)
	assert.Nil(t, meta)

	got, err := repo.GetRates(ctx, "EUR", []string{"RUB"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRateRepository_ListRatesPages(t *testing.T) {
	repo := memory.NewRateRepository()
	ctx := context.Background()
	require.NoError(t, repo.UpsertRates(ctx, "USD", rates(), "ECB", time.Now()))

	page, err := repo.ListRates(ctx, "USD", "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "BTC", page[0].Symbol)
	assert.Equal(t, "EUR", page[1].Symbol)

	page, err = repo.ListRates(ctx, "USD", page[1].Symbol, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "RUB", page[0].Symbol)
	assert.Equal(t, "USD", page[1].Symbol)

	page, err = repo.ListRates(ctx, "USD", "USD", 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestRateRepository_Close(t *testing.T) {
	repo := memory.NewRateRepository()
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	_, err := repo.GetRates(context.Background(), "USD", []string{"EUR"})
	assert.ErrorIs(t, err, apperrors.ErrClosed)
}
