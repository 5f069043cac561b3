package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/SscSPs/currency_converter/internal/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const viaPivotSuffix = " (via " + domain.PivotCurrency + ")"

// Aggregator merges the fiat chain with the crypto provider and rebases the
// result when the reference base is not USD.
type Aggregator struct {
	fiat   *Chain
	crypto portsproviders.RateProvider
	direct portsproviders.BaseRateProvider
	logger *slog.Logger
	metric *metrics.ConverterMetrics
}

var _ portsproviders.RateSource = (*Aggregator)(nil)

// AggregatorConfig wires the providers used by an Aggregator. Crypto and
// Direct may be nil.
type AggregatorConfig struct {
	Fiat    []portsproviders.RateProvider
	Crypto  portsproviders.RateProvider
	Direct  portsproviders.BaseRateProvider
	Logger  *slog.Logger
	Metrics *metrics.ConverterMetrics
}

// NewAggregator creates an Aggregator from cfg.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		fiat:   NewChain(logger, cfg.Metrics, cfg.Fiat...),
		crypto: cfg.Crypto,
		direct: cfg.Direct,
		logger: logger,
		metric: cfg.Metrics,
	}
}

// NewDefaultAggregator wires ECB and Frankfurter as the fiat chain, CoinGecko
// for crypto and Frankfurter for direct non-USD bases, all sharing client.
func NewDefaultAggregator(client *http.Client, urls URLs, logger *slog.Logger, m *metrics.ConverterMetrics) *Aggregator {
	frankfurter := NewFrankfurterProvider(urls.Frankfurter, client)
	return NewAggregator(AggregatorConfig{
		Fiat:    []portsproviders.RateProvider{NewECBProvider(urls.ECB, client), frankfurter},
		Crypto:  NewCoinGeckoProvider(urls.CoinGecko, client, nil),
		Direct:  frankfurter,
		Logger:  logger,
		Metrics: m,
	})
}

// URLs overrides provider endpoints. Empty fields use the public defaults.
type URLs struct {
	ECB         string
	Frankfurter string
	CoinGecko   string
}

// FetchRates returns units of each currency per 1 unit of base and a label
// naming the providers that contributed.
func (a *Aggregator) FetchRates(ctx context.Context, base string) (domain.Rates, string, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" || base == domain.PivotCurrency {
		return a.fetchPivot(ctx)
	}
	return a.fetchForBase(ctx, base)
}

// fetchPivot runs the fiat chain and the crypto provider concurrently and
// merges fiat first, then crypto.
func (a *Aggregator) fetchPivot(ctx context.Context) (domain.Rates, string, error) {
	var (
		fiatRates, cryptoRates domain.Rates
		fiatName               string
		fiatErr, cryptoErr     error
	)

	var g errgroup.Group
	g.Go(func() error {
		fiatRates, fiatName, fiatErr = a.fiat.Fetch(ctx)
		return nil
	})
	if a.crypto != nil {
		g.Go(func() error {
			cryptoRates, cryptoErr = a.crypto.FetchRates(ctx)
			a.metric.ObserveProviderFetch(a.crypto.Name(), cryptoErr)
			if cryptoErr != nil {
				a.logger.WarnContext(ctx, "rate provider unavailable", "provider", a.crypto.Name(), "error", cryptoErr)
			}
			return nil
		})
	}
	_ = g.Wait()

	rates := make(domain.Rates, len(fiatRates)+len(cryptoRates)+1)
	var sources []string
	if fiatErr == nil && len(fiatRates) > 0 {
		for code, rate := range fiatRates {
			rates[code] = rate
		}
		sources = append(sources, fiatName)
	}
	if cryptoErr == nil && len(cryptoRates) > 0 {
		for code, rate := range cryptoRates {
			rates[code] = rate
		}
		sources = append(sources, a.crypto.Name())
	}

	if len(rates) == 0 {
		if cause := errors.Join(fiatErr, cryptoErr); cause != nil {
			return nil, "", fmt.Errorf("%w: %w", apperrors.ErrAllProvidersFailed, cause)
		}
		return nil, "", apperrors.ErrAllProvidersFailed
	}

	rates[domain.PivotCurrency] = decimal.NewFromInt(1)
	return rates, strings.Join(sources, "+"), nil
}

// fetchForBase asks the direct provider first and falls back to rebasing the
// USD rates.
func (a *Aggregator) fetchForBase(ctx context.Context, base string) (domain.Rates, string, error) {
	if a.direct != nil {
		rates, err := a.direct.FetchRatesForBase(ctx, base)
		a.metric.ObserveProviderFetch(a.direct.Name(), err)
		if err == nil && len(rates) > 0 {
			rates[base] = decimal.NewFromInt(1)
			return rates, a.direct.Name(), nil
		}
		if err == nil {
			err = errors.New("empty response")
		}
		a.logger.WarnContext(ctx, "direct base fetch failed, rebasing from USD",
			"provider", a.direct.Name(), "base", base, "error", err)
	}

	usdRates, source, err := a.fetchPivot(ctx)
	if err != nil {
		return nil, "", err
	}

	rebased, err := Rebase(usdRates, base)
	if err != nil {
		return nil, "", err
	}
	return rebased, source + viaPivotSuffix, nil
}

// Rebase re-expresses USD-relative rates against base:
// rate(base, X) = rate(USD, X) / rate(USD, base).
func Rebase(usdRates domain.Rates, base string) (domain.Rates, error) {
	baseRate, ok := usdRates[base]
	if !ok || !baseRate.IsPositive() {
		return nil, fmt.Errorf("%w: %s missing from %s rates", apperrors.ErrRebase, base, domain.PivotCurrency)
	}

	out := make(domain.Rates, len(usdRates))
	for code, rate := range usdRates {
		out[code] = domain.Ratio(rate, baseRate)
	}
	out[base] = decimal.NewFromInt(1)
	return out, nil
}
