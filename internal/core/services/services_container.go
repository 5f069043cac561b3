package services

import (
	"context"

	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/metrics"
	"github.com/SscSPs/currency_converter/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, source portsproviders.RateSource, m *metrics.ConverterMetrics) (*portssvc.ServiceContainer, error) {
	converter, err := NewConverterService(ctx, repos.RateRepo, source,
		WithReferenceBase(cfg.ReferenceBase),
		WithStalenessThreshold(cfg.StalenessThreshold),
		WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Converter: converter,
	}, nil
}
