package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/adapters/database/pgsql"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RateRepositorySuite runs against a real database named by TEST_PGSQL_URL.
type RateRepositorySuite struct {
	suite.Suite
	repo *pgsql.PgxRateRepository
	base string
}

func TestRateRepositorySuite(t *testing.T) {
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		t.Skip("TEST_PGSQL_URL not set")
	}
	suite.Run(t, &RateRepositorySuite{})
}

func (s *RateRepositorySuite) SetupSuite() {
	pool, err := database.NewPgxPool(context.Background(), os.Getenv("TEST_PGSQL_URL"), true)
	s.Require().NoError(err)
	s.repo = pgsql.NewPgxRateRepository(pool)
	s.Require().NoError(s.repo.EnsureSchema(context.Background()))
	s.Require().NoError(s.repo.EnsureSchema(context.Background()), "schema creation is idempotent")
}

func (s *RateRepositorySuite) TearDownSuite() {
	_, _ = s.repo.Pool.Exec(context.Background(), `DELETE FROM rates WHERE base LIKE 'T%'`)
	s.Require().NoError(s.repo.Close())
	s.Require().NoError(s.repo.Close())
}

func (s *RateRepositorySuite) SetupTest() {
	// A per-test base keeps tests independent of each other and of real data.
	s.base = "T" + time.Now().Format("150405.000000000")
	_, err := s.repo.Pool.Exec(context.Background(), `DELETE FROM rates WHERE base = $1`, s.base)
	s.Require().NoError(err)
}

func (s *RateRepositorySuite) TestEmptyBase() {
	ctx := context.Background()
	meta, err := s.repo.LastFetchMeta(ctx, s.base)
	s.Require().NoError(err)
	s.Nil(meta)

	got, err := s.repo.GetRates(ctx, s.base, []string{s.base, "EUR"})
	s.Require().NoError(err)
	s.Len(got, 1)
	s.True(got[s.base].Equal(decimal.NewFromInt(1)))
}

func (s *RateRepositorySuite) TestUpsertReadRoundTrip() {
	ctx := context.Background()
	fetchedAt := time.Unix(1_715_000_000, 0).UTC()
	rates := domain.Rates{
		"EUR": decimal.RequireFromString("0.9090909090909090909090909091"),
		"BTC": decimal.RequireFromString("0.000025"),
	}

	s.Require().NoError(s.repo.UpsertRates(ctx, s.base, rates, "ECB+CoinGecko", fetchedAt))

	meta, err := s.repo.LastFetchMeta(ctx, s.base)
	s.Require().NoError(err)
	s.Require().NotNil(meta)
	s.Equal(fetchedAt, meta.FetchedAt)
	s.Equal("ECB+CoinGecko", meta.Source)

	got, err := s.repo.GetRates(ctx, s.base, []string{"EUR", "BTC", "XYZ"})
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal("0.9090909090909090909090909091", got["EUR"].String())

	s.Require().NoError(s.repo.UpsertRates(ctx, s.base, domain.Rates{"EUR": decimal.RequireFromString("0.91")}, "ECB", fetchedAt.Add(time.Hour)))
	got, err = s.repo.GetRates(ctx, s.base, []string{"EUR", "BTC"})
	s.Require().NoError(err)
	s.Equal("0.91", got["EUR"].String())
	s.Equal("0.000025", got["BTC"].String())

	page, err := s.repo.ListRates(ctx, s.base, "", 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("BTC", page[0].Symbol)
	page, err = s.repo.ListRates(ctx, s.base, "BTC", 10)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("EUR", page[0].Symbol)
	s.Equal(fetchedAt.Add(time.Hour), page[0].FetchedAt)
}

func TestNewPgxPool_RequiresURL(t *testing.T) {
	_, err := database.NewPgxPool(context.Background(), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}
