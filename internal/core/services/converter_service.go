package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/currency"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsproviders "github.com/SscSPs/currency_converter/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/metrics"
	"github.com/shopspring/decimal"
)

// DefaultStalenessThreshold is the age at which stored rates are refreshed.
const DefaultStalenessThreshold = 12 * time.Hour

// identitySource labels results for same-currency conversions made before any fetch.
const identitySource = "identity"

// Refresh triggers, used as metric labels and in logs.
const (
	triggerStale   = "stale"
	triggerMissing = "missing"
	triggerForced  = "forced"
	triggerWarmup  = "warmup"
)

// ConverterService converts amounts using rates cached in a rate store and
// refreshed lazily from a rate source.
//
// A single mutex guards the staleness check, the refresh (network included)
// and every store access, so concurrent callers never see a partial refresh
// and never refresh twice for the same staleness.
type ConverterService struct {
	BaseService
	repo    portsrepo.RateRepositoryFacade
	source  portsproviders.RateSource
	metrics *metrics.ConverterMetrics

	base       string
	staleAfter time.Duration
	now        func() time.Time

	mu     sync.Mutex
	closed bool
}

// ConverterOption is a functional option for configuring the converter service
type ConverterOption func(*ConverterService)

// WithReferenceBase sets the currency stored rates are relative to.
func WithReferenceBase(base string) ConverterOption {
	return func(s *ConverterService) {
		if base = strings.ToUpper(strings.TrimSpace(base)); base != "" {
			s.base = base
		}
	}
}

// WithStalenessThreshold sets the maximum age of stored rates.
func WithStalenessThreshold(d time.Duration) ConverterOption {
	return func(s *ConverterService) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ConverterOption {
	return func(s *ConverterService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics records refreshes and conversions on m.
func WithMetrics(m *metrics.ConverterMetrics) ConverterOption {
	return func(s *ConverterService) {
		s.metrics = m
	}
}

// NewConverterService creates a converter over repo and source and ensures
// the store schema exists.
func NewConverterService(ctx context.Context, repo portsrepo.RateRepositoryFacade, source portsproviders.RateSource, options ...ConverterOption) (*ConverterService, error) {
	svc := &ConverterService{
		repo:       repo,
		source:     source,
		base:       domain.PivotCurrency,
		staleAfter: DefaultStalenessThreshold,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("preparing rate store: %w", err)
	}
	return svc, nil
}

var _ portssvc.ConverterSvcFacade = (*ConverterService)(nil)

func (s *ConverterService) ReferenceBase() string {
	return s.base
}

// ConvertPair parses pair and converts amount between its two currencies.
func (s *ConverterService) ConvertPair(ctx context.Context, pair string, amount decimal.Decimal) (*domain.ConversionResult, error) {
	from, to, err := currency.ParsePair(pair)
	if err != nil {
		s.metrics.ObserveConversion(err)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return s.Convert(ctx, from, to, amount)
}

// Convert converts amount of from into to.
func (s *ConverterService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (result *domain.ConversionResult, err error) {
	defer func() { s.metrics.ObserveConversion(err) }()

	fromCode, err := currency.Normalize(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	toCode, err := currency.Normalize(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := domain.CheckAmount(amount); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	rate, meta, err := s.resolveRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionResult{
		Base:      fromCode,
		Quote:     toCode,
		Amount:    amount,
		Rate:      rate,
		Result:    amount.Mul(rate).Round(domain.ResultPlaces),
		FetchedAt: meta.FetchedAt,
		Source:    meta.Source,
	}, nil
}

// resolveRate returns units of to per one unit of from and the fetch it came
// from, refreshing the store first when needed.
func (s *ConverterService) resolveRate(ctx context.Context, from, to string) (decimal.Decimal, *domain.FetchMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return decimal.Zero, nil, apperrors.ErrClosed
	}

	if from == to {
		return decimal.NewFromInt(1), s.identityMetaLocked(ctx), nil
	}

	meta, err := s.ensureFreshLocked(ctx)
	if err != nil {
		return decimal.Zero, nil, err
	}

	symbols := []string{from, to}
	rates, err := s.repo.GetRates(ctx, s.base, symbols)
	if err != nil {
		return decimal.Zero, nil, err
	}

	if missing := missingSymbols(rates, symbols); len(missing) > 0 {
		s.LogInfo(ctx, "Rates missing from store, forcing refresh", slog.Any("symbols", missing))
		if meta, err = s.refreshLocked(ctx, triggerMissing); err != nil {
			return decimal.Zero, nil, err
		}
		if rates, err = s.repo.GetRates(ctx, s.base, symbols); err != nil {
			return decimal.Zero, nil, err
		}
		if missing = missingSymbols(rates, symbols); len(missing) > 0 {
			return decimal.Zero, nil, &apperrors.RateUnavailableError{Symbols: missing}
		}
	}

	rate, err := s.crossRate(rates, from, to)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return rate, meta, nil
}

// ForceUpdate refreshes the stored rates regardless of their age.
func (s *ConverterService) ForceUpdate(ctx context.Context) (*domain.FetchMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrClosed
	}
	return s.refreshLocked(ctx, triggerForced)
}

// Warmup refreshes the stored rates when they are missing or stale.
func (s *ConverterService) Warmup(ctx context.Context) (*domain.FetchMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrClosed
	}

	meta, err := s.repo.LastFetchMeta(ctx, s.base)
	if err != nil {
		return nil, err
	}
	if !s.isStale(meta) {
		return meta, nil
	}
	return s.refreshLocked(ctx, triggerWarmup)
}

// ListRates returns stored rates for the reference base ordered by symbol.
func (s *ConverterService) ListRates(ctx context.Context, afterSymbol string, limit int) ([]domain.RateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrClosed
	}
	return s.repo.ListRates(ctx, s.base, strings.ToUpper(afterSymbol), limit)
}

// Close releases the rate store. Later calls return nil.
func (s *ConverterService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.repo.Close()
}

// identityMetaLocked reports the last fetch for a same-currency conversion,
// or now with the identity source when nothing was fetched yet.
func (s *ConverterService) identityMetaLocked(ctx context.Context) *domain.FetchMeta {
	fallback := &domain.FetchMeta{FetchedAt: s.now().UTC(), Source: identitySource}
	meta, err := s.repo.LastFetchMeta(ctx, s.base)
	if err != nil {
		s.LogWarn(ctx, "Could not read last fetch for identity conversion", slog.String("error", err.Error()))
		return fallback
	}
	if meta == nil {
		return fallback
	}
	return meta
}

// ensureFreshLocked refreshes when nothing is stored or the last fetch is too old.
func (s *ConverterService) ensureFreshLocked(ctx context.Context) (*domain.FetchMeta, error) {
	meta, err := s.repo.LastFetchMeta(ctx, s.base)
	if err != nil {
		return nil, err
	}
	if !s.isStale(meta) {
		return meta, nil
	}
	return s.refreshLocked(ctx, triggerStale)
}

func (s *ConverterService) isStale(meta *domain.FetchMeta) bool {
	return meta == nil || s.now().Sub(meta.FetchedAt) >= s.staleAfter
}

// refreshLocked fetches rates for the reference base and stores them.
func (s *ConverterService) refreshLocked(ctx context.Context, trigger string) (*domain.FetchMeta, error) {
	began := time.Now()

	rates, source, err := s.source.FetchRates(ctx, s.base)
	if err != nil {
		s.metrics.ObserveRefresh(s.base, trigger, time.Since(began), 0, err)
		s.LogError(ctx, err, "Failed to fetch rates", slog.String("base", s.base), slog.String("trigger", trigger))
		return nil, err
	}
	if rates == nil {
		rates = domain.Rates{}
	}
	rates[s.base] = decimal.NewFromInt(1)

	fetchedAt := s.now().UTC().Truncate(time.Second)
	if err := s.repo.UpsertRates(ctx, s.base, rates, source, fetchedAt); err != nil {
		s.metrics.ObserveRefresh(s.base, trigger, time.Since(began), 0, err)
		s.LogError(ctx, err, "Failed to store rates", slog.String("base", s.base))
		return nil, err
	}

	s.metrics.ObserveRefresh(s.base, trigger, time.Since(began), len(rates), nil)
	s.LogInfo(ctx, "Rates refreshed",
		slog.String("base", s.base),
		slog.String("trigger", trigger),
		slog.String("source", source),
		slog.Int("symbols", len(rates)))

	return &domain.FetchMeta{FetchedAt: fetchedAt, Source: source}, nil
}

// crossRate derives units of to per one unit of from out of base-relative rates.
func (s *ConverterService) crossRate(rates domain.Rates, from, to string) (decimal.Decimal, error) {
	switch {
	case from == to:
		return decimal.NewFromInt(1), nil
	case from == s.base:
		return rates[to], nil
	}

	fromRate := rates[from]
	if !fromRate.IsPositive() {
		return decimal.Zero, &apperrors.RateUnavailableError{Symbols: []string{from}}
	}
	if to == s.base {
		return domain.Invert(fromRate), nil
	}
	return domain.Ratio(rates[to], fromRate), nil
}

func missingSymbols(rates domain.Rates, symbols []string) []string {
	var missing []string
	for _, sym := range symbols {
		if _, ok := rates[sym]; !ok {
			missing = append(missing, sym)
		}
	}
	return missing
}
