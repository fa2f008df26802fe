package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/students", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/students", http.StatusOK, 40*time.Millisecond)
	m.RecordAdded("teacher")
	m.RecordRemoved("student")
	m.RecordScoreUpdates(5, 1)
	m.RecordExport("pdf")

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(1), snap.RecordsAdded)
	assert.Equal(t, uint64(1), snap.RecordsRemoved)
	assert.Equal(t, uint64(5), snap.ScoresApplied)
	assert.Equal(t, uint64(1), snap.ScoresIgnored)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `exports_total{format="pdf"} 1`)
	assert.Contains(t, rec.Body.String(), `score_updates_total{outcome="ignored"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordAdded("student")
	m.RecordScoreUpdates(1, 1)
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
