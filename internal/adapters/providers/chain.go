package providers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/SscSPs/currency_converter/internal/metrics"
)

// Chain tries providers in order and returns the first success.
type Chain struct {
	providers []portsproviders.RateProvider
	logger    *slog.Logger
	metrics   *metrics.ConverterMetrics
}

// NewChain builds a fallback chain. A nil logger uses slog.Default().
func NewChain(logger *slog.Logger, m *metrics.ConverterMetrics, providers ...portsproviders.RateProvider) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{providers: providers, logger: logger, metrics: m}
}

// Fetch returns the rates and name of the first provider that succeeds.
// When every provider fails the joined errors are returned.
func (c *Chain) Fetch(ctx context.Context) (domain.Rates, string, error) {
	var errs []error
	for _, p := range c.providers {
		rates, err := p.FetchRates(ctx)
		c.metrics.ObserveProviderFetch(p.Name(), err)
		if err == nil {
			return rates, p.Name(), nil
		}
		c.logger.WarnContext(ctx, "rate provider unavailable", "provider", p.Name(), "error", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, "", apperrors.ErrAllProvidersFailed
	}
	return nil, "", errors.Join(errs...)
}
