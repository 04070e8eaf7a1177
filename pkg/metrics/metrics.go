package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stripe/stripe-go/v74"

	"github.com/sefazor/checkout-backend/pkg/payment"
)

type Metrics struct {
	registry *prometheus.Registry

	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	ProviderCalls *prometheus.CounterVec
	ProviderMS    *prometheus.HistogramVec
}

var latencyBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

// New registers the collectors on a private registry so that several
// instances can coexist in one process.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   latencyBuckets,
		}, []string{"route"}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stripe",
			Name:      "calls_total",
			Help:      "Calls made to the billing provider, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ProviderMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stripe",
			Name:      "call_duration_ms",
			Help:      "Billing provider call latency in milliseconds.",
			Buckets:   latencyBuckets,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(m.Requests, m.LatencyMS, m.ProviderCalls, m.ProviderMS)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts every request by matched route and final status.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil && status < fiber.StatusBadRequest {
			status = fiber.StatusInternalServerError
		}

		route := c.Route().Path
		m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(started).Milliseconds()))
		return err
	}
}

// ObserveProviderCall implements payment.Observer.
func (m *Metrics) ObserveProviderCall(operation string, started time.Time, err error) {
	m.ProviderCalls.WithLabelValues(operation, outcome(err)).Inc()
	m.ProviderMS.WithLabelValues(operation).Observe(float64(time.Since(started).Milliseconds()))
}

var _ payment.Observer = (*Metrics)(nil)

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return string(se.Type)
	}
	return "error"
}
