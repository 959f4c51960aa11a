package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	// method, path, status_code
	HTTPRequestsTotal *prometheus.CounterVec

	// method, path
	HTTPRequestDuration *prometheus.HistogramVec

	// kind: events, artists, venues
	FilterResultSize *prometheus.HistogramVec

	// status: success, failed
	CatalogReloadsTotal *prometheus.CounterVec

	// format: google, ics
	CalendarExportsTotal *prometheus.CounterVec
}

// New registers the collectors with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors with reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		FilterResultSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_filter_result_size",
				Help:    "Number of items returned by a discovery filter pass",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"kind"},
		),
		CatalogReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_reloads_total",
				Help: "Total number of catalog reload attempts",
			},
			[]string{"status"},
		),
		CalendarExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calendar_exports_total",
				Help: "Total number of calendar exports",
			},
			[]string{"format"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FilterResultSize,
		m.CatalogReloadsTotal,
		m.CalendarExportsTotal,
	)

	return m
}

// ObserveFilter records a filter pass. Safe on a nil receiver.
func (m *Metrics) ObserveFilter(kind string, size int) {
	if m == nil {
		return
	}
	m.FilterResultSize.WithLabelValues(kind).Observe(float64(size))
}

// CatalogReload counts a reload attempt. Safe on a nil receiver.
func (m *Metrics) CatalogReload(success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failed"
	}
	m.CatalogReloadsTotal.WithLabelValues(status).Inc()
}

// CalendarExport counts an export. Safe on a nil receiver.
func (m *Metrics) CalendarExport(format string) {
	if m == nil {
		return
	}
	m.CalendarExportsTotal.WithLabelValues(format).Inc()
}
