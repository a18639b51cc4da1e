package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeEmpty = "empty"
)

// Metrics holds all application metrics. A nil *Metrics is valid and records
// nothing, so tests can pass nil without touching the global registry.
type Metrics struct {
	GenerationAttempts    *prometheus.CounterVec
	GenerationLatency     *prometheus.HistogramVec
	TranscriptionAttempts *prometheus.CounterVec
	SummaryCacheHits      prometheus.Counter
	ArchiveWrites         *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		GenerationAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_total",
			Help:      "Generation attempts per candidate model and outcome",
		}, []string{"model", "outcome"}),
		GenerationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of individual generation attempts",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"model"}),
		TranscriptionAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcription_attempts_total",
			Help:      "Transcription attempts per model and outcome",
		}, []string{"model", "outcome"}),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_cache_hits_total",
			Help:      "Summarization requests served from the result cache",
		}),
		ArchiveWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_writes_total",
			Help:      "Encounter archive writes by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveGeneration records one generation attempt.
func (m *Metrics) ObserveGeneration(model, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.GenerationAttempts.WithLabelValues(model, outcome).Inc()
	m.GenerationLatency.WithLabelValues(model).Observe(d.Seconds())
}

// ObserveTranscription records one transcription attempt.
func (m *Metrics) ObserveTranscription(model, outcome string) {
	if m == nil {
		return
	}
	m.TranscriptionAttempts.WithLabelValues(model, outcome).Inc()
}

// IncCacheHit records a summary served from cache.
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.SummaryCacheHits.Inc()
}

// IncArchiveWrite records an archive write outcome.
func (m *Metrics) IncArchiveWrite(outcome string) {
	if m == nil {
		return
	}
	m.ArchiveWrites.WithLabelValues(outcome).Inc()
}
