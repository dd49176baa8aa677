// Package metrics records conversion telemetry as Prometheus collectors.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gogpu/vectorize"
)

// Conversion results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the collectors of one registry.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	paths       prometheus.Counter
	points      *prometheus.CounterVec
	duration    prometheus.Histogram
	cache       *prometheus.CounterVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectorize_conversions_total",
				Help: "Total number of conversions by result",
			},
			[]string{"result"},
		),
		paths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vectorize_paths_total",
			Help: "Total number of paths emitted",
		}),
		points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectorize_points_total",
				Help: "Total number of points by pipeline stage",
			},
			[]string{"stage"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vectorize_conversion_duration_seconds",
			Help:    "Duration of conversions",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectorize_cache_requests_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.conversions, m.paths, m.points, m.duration, m.cache)
	return m
}

// Observe records one conversion. doc may be nil when err is set.
func (m *Metrics) Observe(doc *vectorize.Document, elapsed time.Duration, err error) {
	m.duration.Observe(elapsed.Seconds())
	if err != nil || doc == nil {
		m.conversions.WithLabelValues(ResultError).Inc()
		return
	}
	m.conversions.WithLabelValues(ResultOK).Inc()
	m.paths.Add(float64(len(doc.Paths)))
	m.points.WithLabelValues("extracted").Add(float64(doc.Stats.PointsExtracted))
	m.points.WithLabelValues("simplified").Add(float64(doc.Stats.PointsSimplified))
}

// ObserveCache records a result cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if hit {
		m.cache.WithLabelValues("hit").Inc()
		return
	}
	m.cache.WithLabelValues("miss").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the current values to path for the node exporter
// textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
