package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the dashboard's Prometheus metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	ScenesRendered prometheus.Counter
	EdgesDropped   prometheus.Counter
	DatasetReloads *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with every metric registered under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ScenesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenes_rendered_total",
			Help:      "Total number of network scenes rendered",
		}),
		EdgesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_dropped_total",
			Help:      "Links skipped during rendering because an endpoint was unknown",
		}),
		DatasetReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_reloads_total",
			Help:      "Dataset reload attempts by result",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.ScenesRendered,
		c.EdgesDropped,
		c.DatasetReloads,
		c.HTTPRequests,
		c.HTTPDuration,
	)
	return c
}

// RecordScene counts one rendered scene and the links it dropped.
func (c *Collector) RecordScene(dropped int) {
	c.ScenesRendered.Inc()
	if dropped > 0 {
		c.EdgesDropped.Add(float64(dropped))
	}
}

// RecordReload counts a dataset reload attempt.
func (c *Collector) RecordReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.DatasetReloads.WithLabelValues(result).Inc()
}

// RecordRequest counts one HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
