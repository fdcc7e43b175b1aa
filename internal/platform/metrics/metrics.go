package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the HTTP surface.
type Metrics struct {
	Requests        *prometheus.CounterVec
	EndpointLatency *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// New creates and registers HTTP metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmpref_http_requests_total",
			Help: "Total number of HTTP requests, labeled by method, route and status",
		}, []string{"method", "route", "status"}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cmpref_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "cmpref_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),
	}
}

// IncrementRequests counts a finished request.
func (m *Metrics) IncrementRequests(method, route, status string) {
	m.Requests.WithLabelValues(method, route, status).Inc()
}

// ObserveEndpointLatency records the latency for a given route.
func (m *Metrics) ObserveEndpointLatency(route string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(route).Observe(durationSeconds)
}

func (m *Metrics) IncrementInFlight() { m.InFlight.Inc() }
func (m *Metrics) DecrementInFlight() { m.InFlight.Dec() }
