// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the in-memory store.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"storefront/internal/repository"
)

// Metrics owns its registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

func New(store CountSource) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storefront",
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
	}
	m.Registry.MustRegister(m.requests, m.duration, m.inFlight)
	if store != nil {
		m.Registry.MustRegister(newStoreCollector(store))
	}
	return m
}

// ObserveRequest records one finished request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) TrackInFlight(delta float64) { m.inFlight.Add(delta) }

// CountSource reports collection sizes.
type CountSource interface {
	Counts(ctx context.Context) repository.Counts
}

type storeCollector struct {
	store CountSource
	desc  *prometheus.Desc
}

func newStoreCollector(store CountSource) *storeCollector {
	return &storeCollector{
		store: store,
		desc: prometheus.NewDesc(
			"storefront_store_entities",
			"Entities held in the in-memory store.",
			[]string{"collection"}, nil,
		),
	}
}

func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) { ch <- c.desc }

func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.store.Counts(context.Background())
	for name, n := range map[string]int{
		"products": counts.Products,
		"orders":   counts.Orders,
		"users":    counts.Users,
		"carts":    counts.Carts,
	} {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), name)
	}
}
