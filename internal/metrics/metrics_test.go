package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.EventCreated(SourceForm)
	m.EventCreated(SourceImage)
	m.EventCreated(SourceImage)
	m.EventDeleted()
	m.ExtractionFailed("parse")
	m.UploadRemoved("sweep")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsCreated.WithLabelValues(SourceForm)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.eventsCreated.WithLabelValues(SourceImage)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.extractionFailures.WithLabelValues("parse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploadsRemoved.WithLabelValues("sweep")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.EventCreated(SourceForm)
		m.EventDeleted()
		m.ExtractionFailed("api")
		m.ObserveClassifier(time.Second)
		m.ObserveRequest("/events", "GET", "200", time.Millisecond)
		m.UploadRemoved("retry")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("/events", "GET", "200", 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `calendar_http_requests_total{method="GET",route="/events",status="200"} 1`)
}
