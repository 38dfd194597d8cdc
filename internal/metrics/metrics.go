// Package metrics exposes Prometheus collectors fed from the eventbus.
package metrics

import (
	"context"
	"net/http"

	eventbus "github.com/hanpama/graphdoc/internal/eventbus"
	events "github.com/hanpama/graphdoc/internal/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type collectors struct {
	operations  *prometheus.CounterVec
	fieldErrors prometheus.Counter
	duration    *prometheus.HistogramVec
	httpStatus  *prometheus.CounterVec
}

// Setup registers the collectors with reg (nil means the default registry)
// and subscribes them to the global eventbus. It returns an http.Handler
// serving the /metrics endpoint for the chosen registry.
func Setup(reg *prometheus.Registry) http.Handler {
	c := &collectors{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdoc_operations_total",
				Help: "Resolved GraphQL operations",
			},
			[]string{"operation_type"},
		),
		fieldErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "graphdoc_field_errors_total",
				Help: "Field errors attached to response paths",
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphdoc_operation_duration_seconds",
				Help:    "Operation resolution latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
		httpStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdoc_http_responses_total",
				Help: "HTTP responses by status code",
			},
			[]string{"status"},
		),
	}
	if reg == nil {
		prometheus.MustRegister(c.operations, c.fieldErrors, c.duration, c.httpStatus)
		c.register()
		return promhttp.Handler()
	}
	reg.MustRegister(c.operations, c.fieldErrors, c.duration, c.httpStatus)
	c.register()
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (c *collectors) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.OperationFinish) {
		c.operations.WithLabelValues(e.OperationType).Inc()
		c.duration.WithLabelValues(e.OperationType).Observe(e.Duration.Seconds())
		c.fieldErrors.Add(float64(len(e.Errors)))
	})
	eventbus.Subscribe(func(ctx context.Context, e events.HTTPFinish) {
		c.httpStatus.WithLabelValues(statusLabel(e.Status)).Inc()
	})
}

func statusLabel(status int) string {
	switch {
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
