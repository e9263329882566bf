package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bbd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveRenderDuration(duration time.Duration)
	SetRosterEntries(installationID string, count int)
	IncTaskFailure(task string)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	renderDuration  prometheus.Histogram
	rosterEntries   *prometheus.GaugeVec
	taskFailures    *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveRenderDuration(duration time.Duration) {
	m.renderDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRosterEntries(installationID string, count int) {
	m.rosterEntries.WithLabelValues(installationID).Set(float64(count))
}

func (m *MetricsProvider) IncTaskFailure(task string) {
	m.taskFailures.WithLabelValues(task).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bbd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bbd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bbd_cache_hits_total",
			Help: "Total number of rendered-view cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bbd_cache_misses_total",
			Help: "Total number of rendered-view cache misses",
		}),

		renderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bbd_render_duration_seconds",
			Help:    "Duration of full view renders in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		rosterEntries: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bbd_roster_entries",
			Help: "Number of roster entries per installation",
		}, []string{"installation"}),

		taskFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bbd_scheduled_task_failures_total",
			Help: "Scheduled maintenance tasks that exhausted their retries",
		}, []string{"task"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveRenderDuration(_ time.Duration)            {}
func (n *noopMetrics) SetRosterEntries(_ string, _ int)                 {}
func (n *noopMetrics) IncTaskFailure(_ string)                          {}
