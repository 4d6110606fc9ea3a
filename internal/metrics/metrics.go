package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	PurchasesTotal  *prometheus.CounterVec
	TopUpsTotal     *prometheus.CounterVec
	RefundsTotal    *prometheus.CounterVec
	ProviderCalls   *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec

	// Database Metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueriesTotal  *prometheus.CounterVec

	// Cache Metrics
	CacheLookups *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vtugateway_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "vtugateway_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		PurchasesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_purchases_total",
				Help: "Total number of purchase attempts by service type and final status",
			},
			[]string{"service_type", "status"},
		),
		TopUpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_topups_total",
				Help: "Total number of wallet top-ups",
			},
			[]string{"status"},
		),
		RefundsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_refunds_total",
				Help: "Total number of processed refunds",
			},
			[]string{"status"},
		),
		ProviderCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_provider_calls_total",
				Help: "Total number of upstream provider calls",
			},
			[]string{"provider", "outcome"},
		),
		ProviderLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vtugateway_provider_call_duration_seconds",
				Help:    "Duration of upstream provider calls in seconds",
				Buckets: []float64{0.1, 0.5, 1.0, 2.0, 3.0, 5.0, 10.0},
			},
			[]string{"provider"},
		),

		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vtugateway_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),

		CacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vtugateway_cache_lookups_total",
				Help: "Total number of catalog cache lookups",
			},
			[]string{"key", "result"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordPurchase(serviceType, status string) {
	m.PurchasesTotal.WithLabelValues(serviceType, status).Inc()
}

func (m *Metrics) RecordTopUp(status string) {
	m.TopUpsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordRefund(status string) {
	m.RefundsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordProviderCall(provider, outcome string, duration time.Duration) {
	m.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	m.ProviderLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordCacheLookup(key, result string) {
	m.CacheLookups.WithLabelValues(key, result).Inc()
}
