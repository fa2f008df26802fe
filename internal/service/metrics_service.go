package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot is a lightweight summary of the collected counters.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	RecordsAdded             uint64    `json:"records_added"`
	RecordsRemoved           uint64    `json:"records_removed"`
	ScoresApplied            uint64    `json:"scores_applied"`
	ScoresIgnored            uint64    `json:"scores_ignored"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	recordsAdded    *prometheus.CounterVec
	recordsRemoved  *prometheus.CounterVec
	scoreUpdates    *prometheus.CounterVec
	exports         *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	addedCount           uint64
	removedCount         uint64
	appliedCount         uint64
	ignoredCount         uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	recordsAdded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "records_added_total",
		Help: "Records added to the store",
	}, []string{"kind"})

	recordsRemoved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "records_removed_total",
		Help: "Records removed from the store",
	}, []string{"kind"})

	scoreUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "score_updates_total",
		Help: "Submitted score records by outcome",
	}, []string{"outcome"})

	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_total",
		Help: "Rendered exports by format",
	}, []string{"format"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, recordsAdded, recordsRemoved, scoreUpdates, exports, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		recordsAdded:    recordsAdded,
		recordsRemoved:  recordsRemoved,
		scoreUpdates:    scoreUpdates,
		exports:         exports,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordAdded counts a record of kind entering the store.
func (m *MetricsService) RecordAdded(kind string) {
	if m == nil {
		return
	}
	m.recordsAdded.WithLabelValues(kind).Inc()
	atomic.AddUint64(&m.addedCount, 1)
}

// RecordRemoved counts a record of kind leaving the store.
func (m *MetricsService) RecordRemoved(kind string) {
	if m == nil {
		return
	}
	m.recordsRemoved.WithLabelValues(kind).Inc()
	atomic.AddUint64(&m.removedCount, 1)
}

// RecordScoreUpdates counts applied and ignored score records.
func (m *MetricsService) RecordScoreUpdates(applied, ignored int) {
	if m == nil {
		return
	}
	m.scoreUpdates.WithLabelValues("applied").Add(float64(applied))
	m.scoreUpdates.WithLabelValues("ignored").Add(float64(ignored))
	atomic.AddUint64(&m.appliedCount, uint64(applied))
	atomic.AddUint64(&m.ignoredCount, uint64(ignored))
}

// RecordExport counts a rendered export.
func (m *MetricsService) RecordExport(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

// Snapshot returns aggregated metrics suitable for the dashboard.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		RecordsAdded:             atomic.LoadUint64(&m.addedCount),
		RecordsRemoved:           atomic.LoadUint64(&m.removedCount),
		ScoresApplied:            atomic.LoadUint64(&m.appliedCount),
		ScoresIgnored:            atomic.LoadUint64(&m.ignoredCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
