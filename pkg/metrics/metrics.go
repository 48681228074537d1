package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Metrics набор коллекторов Prometheus сервиса.
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить конфигом.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cacheRequestsTotal  *prometheus.CounterVec
	windowBuildDuration *prometheus.HistogramVec
	dbQueryDuration     *prometheus.HistogramVec
	dbQueryErrorsTotal  *prometheus.CounterVec
	dbConnections       *prometheus.GaugeVec
}

// New регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "cache_requests_total",
			Help:        "Availability cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		windowBuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "window_build_duration_seconds",
			Help:        "Time spent computing availability windows",
			ConstLabels: constLabels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"days"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		dbQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "connections",
			Help:        "Connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.cacheRequestsTotal,
		m.windowBuildDuration,
		m.dbQueryDuration,
		m.dbQueryErrorsTotal,
		m.dbConnections,
	)
	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveCache result: hit, miss, error
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveWindowBuild(days string, duration time.Duration) {
	if m == nil {
		return
	}
	m.windowBuildDuration.WithLabelValues(days).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// SetDBConnections state: open, in_use, idle
func (m *Metrics) SetDBConnections(state string, value int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(state).Set(float64(value))
}
