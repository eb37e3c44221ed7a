package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/routekit/core/handler"
)

// metricsStartKey is used as a key for storing the request start time in context.
type metricsStartKey struct{}

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Namespace is the metrics namespace (default: "routekit")
	Namespace string

	// Subsystem is the metrics subsystem (default: "http")
	Subsystem string

	// ConstLabels are constant labels added to all metrics
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration
	// (default: prometheus.DefBuckets)
	Buckets []float64

	// Registry is the Prometheus registry to register collectors with
	// (default: prometheus.DefaultRegisterer)
	Registry prometheus.Registerer
}

// Metrics creates a Prometheus metrics before/after pair with default
// configuration. Register the first handler with Router.Before and the second
// with Router.After.
//
// Metrics collected:
//   - routekit_http_requests_total: counter of handled requests by method, path and status
//   - routekit_http_request_duration_seconds: histogram of request duration by method and path
//
// The path label carries the request path. Services with unbounded path
// spaces should Skip those requests or normalize paths upstream.
func Metrics[C handler.Context]() (before, after handler.HandlerFunc[C]) {
	return MetricsWithConfig[C](MetricsConfig{})
}

// MetricsWithConfig creates a Prometheus metrics before/after pair with custom
// configuration. Collectors are registered on construction; building two pairs
// against the same registry panics the way duplicate prometheus registrations
// always do.
func MetricsWithConfig[C handler.Context](cfg MetricsConfig) (before, after handler.HandlerFunc[C]) {
	if cfg.Namespace == "" {
		cfg.Namespace = "routekit"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "http"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registry)

	requestsTotal := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "requests_total",
		Help:        "Total number of handled HTTP requests",
		ConstLabels: cfg.ConstLabels,
	}, []string{"method", "path", "status"})

	requestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        "request_duration_seconds",
		Help:        "HTTP request processing duration in seconds",
		ConstLabels: cfg.ConstLabels,
		Buckets:     cfg.Buckets,
	}, []string{"method", "path"})

	before = func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		ctx.SetValue(metricsStartKey{}, time.Now())
		return res
	}

	after = func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		r := ctx.Request()
		path := r.URL.Path
		if path == "" {
			path = "/"
		}

		status := res.StatusCode()
		if status == 0 {
			status = 200
		}

		if start, ok := ctx.Value(metricsStartKey{}).(time.Time); ok {
			requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		}
		requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()

		return res
	}

	return before, after
}
