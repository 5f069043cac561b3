package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConverterMetrics holds the Prometheus collectors for rate refreshes and conversions.
// A nil *ConverterMetrics is valid and records nothing.
type ConverterMetrics struct {
	// Provider fetch attempts by provider and outcome
	ProviderFetchTotal *prometheus.CounterVec

	// Store refreshes by base, trigger and outcome
	RefreshTotal    *prometheus.CounterVec
	RefreshDuration *prometheus.HistogramVec

	// Rows written by the last successful refresh
	RatesStored *prometheus.GaugeVec

	// Conversions by outcome
	ConversionsTotal *prometheus.CounterVec
}

// NewConverterMetrics registers the collectors on reg.
func NewConverterMetrics(reg prometheus.Registerer) *ConverterMetrics {
	factory := promauto.With(reg)
	return &ConverterMetrics{
		ProviderFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_provider_fetch_total",
				Help: "Rate provider fetch attempts",
			},
			[]string{"provider", "result"},
		),

		RefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_refresh_total",
				Help: "Rate store refreshes",
			},
			[]string{"base", "trigger", "result"},
		),

		RefreshDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_refresh_duration_seconds",
				Help:    "Time spent fetching and storing a refresh",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms .. ~25s
			},
			[]string{"base"},
		),

		RatesStored: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rates_stored",
				Help: "Symbols written by the last successful refresh",
			},
			[]string{"base"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Conversion requests",
			},
			[]string{"result"},
		),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveProviderFetch records one provider attempt.
func (m *ConverterMetrics) ObserveProviderFetch(provider string, err error) {
	if m == nil {
		return
	}
	m.ProviderFetchTotal.WithLabelValues(provider, outcome(err)).Inc()
}

// ObserveRefresh records one refresh of base.
func (m *ConverterMetrics) ObserveRefresh(base, trigger string, took time.Duration, stored int, err error) {
	if m == nil {
		return
	}
	m.RefreshTotal.WithLabelValues(base, trigger, outcome(err)).Inc()
	m.RefreshDuration.WithLabelValues(base).Observe(took.Seconds())
	if err == nil {
		m.RatesStored.WithLabelValues(base).Set(float64(stored))
	}
}

// ObserveConversion records one conversion request.
func (m *ConverterMetrics) ObserveConversion(err error) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(outcome(err)).Inc()
}
