package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flavourhub"

type ServerMetrics struct {
	Requests       *prometheus.CounterVec
	LatencyMS      *prometheus.HistogramVec
	OrdersPlaced   *prometheus.CounterVec
	CartOperations *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewServerMetrics registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry() in tests.
func NewServerMetrics(reg *prometheus.Registry) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Orders placed, by payment method and result.",
	}, []string{"payment_method", "result"})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Cart mutations, by operation and result.",
	}, []string{"op", "result"})

	reg.MustRegister(requests, latency, orders, cartOps)
	return &ServerMetrics{
		Requests:       requests,
		LatencyMS:      latency,
		OrdersPlaced:   orders,
		CartOperations: cartOps,
		gatherer:       reg,
	}
}

// Handler serves the registry. Without metrics it answers 404.
func (m *ServerMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// The recorders below are nil-safe so callers can run without metrics.

func (m *ServerMetrics) ObserveRequest(handler string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))
}

func (m *ServerMetrics) CartOp(op, result string) {
	if m == nil {
		return
	}
	m.CartOperations.WithLabelValues(op, result).Inc()
}

func (m *ServerMetrics) OrderPlaced(method, result string) {
	if m == nil {
		return
	}
	m.OrdersPlaced.WithLabelValues(method, result).Inc()
}
