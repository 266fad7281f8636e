package providers

import (
	"npd/internal/services"
	"npd/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncScrapes(station string, outcome string)
	ObserveScrapeDuration(station string, duration time.Duration)
	IncLookupFailures(provider string)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	scrapesTotal        *prometheus.CounterVec
	scrapeDuration      *prometheus.HistogramVec
	lookupFailures      *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
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

func (m *MetricsProvider) IncScrapes(station string, outcome string) {
	m.scrapesTotal.WithLabelValues(station, outcome).Inc()
}

func (m *MetricsProvider) ObserveScrapeDuration(station string, duration time.Duration) {
	m.scrapeDuration.WithLabelValues(station).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLookupFailures(provider string) {
	m.lookupFailures.WithLabelValues(provider).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
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

func NewMetricsProvider(conf *structures.Config, service services.StationServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "npd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "npd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "npd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "npd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		scrapesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "npd_scrapes_total",
			Help: "Total number of station scrapes by outcome",
		}, []string{"station", "outcome"}),

		scrapeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "npd_scrape_duration_seconds",
			Help:    "Duration of a single station scrape pipeline in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"station"}),

		lookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "npd_lookup_failures_total",
			Help: "Total number of failed external metadata lookups",
		}, []string{"provider"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "npd_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "npd_daily_log_entries",
		Help: "Number of entries in today's dedup log",
	}, func() float64 {
		return float64(service.GetTodayCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "npd_stations_total",
		Help: "Number of configured stations",
	}, func() float64 {
		return float64(len(service.GetStations()))
	})

	return m
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncScrapes(_ string, _ string)                     {}
func (n *noopMetrics) ObserveScrapeDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncLookupFailures(_ string)                        {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
