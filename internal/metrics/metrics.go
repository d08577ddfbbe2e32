package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 事件建立來源
const (
	SourceForm  = "form"
	SourceImage = "image"
)

type Metrics struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	eventsCreated      *prometheus.CounterVec
	eventsDeleted      prometheus.Counter
	extractionFailures *prometheus.CounterVec
	classifierDuration prometheus.Summary
	uploadsRemoved     *prometheus.CounterVec
}

// New 建立獨立的 registry，避免測試之間重複註冊
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "calendar",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	m.eventsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "events_created_total",
		Help:      "Events created, by source (form or image)",
	}, []string{"source"})
	m.eventsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "events_deleted_total",
		Help:      "Events deleted",
	})
	m.extractionFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "extraction_failures_total",
		Help:      "Image extractions that failed, by stage",
	}, []string{"stage"})
	m.classifierDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "calendar",
		Name:      "classifier_duration_seconds",
		Help:      "Time spent in the image classifier call",
	})
	m.uploadsRemoved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "calendar",
		Name:      "uploads_removed_total",
		Help:      "Orphaned upload files removed, by reason",
	}, []string{"reason"})

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.eventsCreated,
		m.eventsDeleted,
		m.extractionFailures,
		m.classifierDuration,
		m.uploadsRemoved,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// 以下方法允許 nil receiver，未啟用 metrics 時直接略過

func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) EventCreated(source string) {
	if m == nil {
		return
	}
	m.eventsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) EventDeleted() {
	if m == nil {
		return
	}
	m.eventsDeleted.Inc()
}

func (m *Metrics) ExtractionFailed(stage string) {
	if m == nil {
		return
	}
	m.extractionFailures.WithLabelValues(stage).Inc()
}

func (m *Metrics) ObserveClassifier(d time.Duration) {
	if m == nil {
		return
	}
	m.classifierDuration.Observe(d.Seconds())
}

func (m *Metrics) UploadRemoved(reason string) {
	if m == nil {
		return
	}
	m.uploadsRemoved.WithLabelValues(reason).Inc()
}

// Handler /metrics 的 exposition handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 供測試讀取數值
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
