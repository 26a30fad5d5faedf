package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coupleclarity"

var (
	// Registry holds the application collectors; it is what /metrics serves.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"method", "route"})

	relayConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "relay",
		Name:      "connections",
		Help:      "Open relay websocket connections on this node.",
	})

	relayEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "relay",
		Name:      "events_total",
		Help:      "Relay events by origin (client, server, peer) and outcome.",
	}, []string{"origin", "outcome"})

	aiCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ai",
		Name:      "calls_total",
		Help:      "Calls to the AI provider by operation and result.",
	}, []string{"operation", "result"})

	aiDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ai",
		Name:      "call_duration_seconds",
		Help:      "Latency of AI provider calls.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"operation"})

	tasks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "tasks_total",
		Help:      "Background tasks processed by type and result.",
	}, []string{"type", "result"})
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		relayConnections,
		relayEvents,
		aiCalls,
		aiDuration,
		tasks,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler exposes the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency, labelled by the gin route
// template rather than the raw path to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		httpInFlight.Dec()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func RelayConnectionOpened() { relayConnections.Inc() }
func RelayConnectionClosed() { relayConnections.Dec() }

// RelayEvent counts one relay event. origin is client, server or peer.
func RelayEvent(origin string, delivered int) {
	outcome := "delivered"
	if delivered == 0 {
		outcome = "dropped"
	}
	relayEvents.WithLabelValues(origin, outcome).Inc()
}

// ObserveAI records one provider call.
func ObserveAI(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	aiCalls.WithLabelValues(operation, result).Inc()
	aiDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// AICacheHit counts a transformation served from cache.
func AICacheHit(operation string) {
	aiCalls.WithLabelValues(operation, "cache_hit").Inc()
}

// ObserveTask records a processed background task.
func ObserveTask(taskType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	tasks.WithLabelValues(taskType, result).Inc()
}
