package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := NewServerMetrics(prometheus.NewRegistry())

	m.CartOp("add", "ok")
	m.CartOp("add", "ok")
	m.CartOp("add", "not_found")
	m.OrderPlaced("COD", "ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CartOperations.WithLabelValues("add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CartOperations.WithLabelValues("add", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("COD", "ok")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *ServerMetrics
	assert.NotPanics(t, func() {
		m.CartOp("add", "ok")
		m.OrderPlaced("UPI", "ok")
		m.ObserveRequest("/menu/items", http.StatusOK, time.Millisecond)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestObserveRequest(t *testing.T) {
	m := NewServerMetrics(prometheus.NewRegistry())
	m.ObserveRequest("/cart", http.StatusOK, 12*time.Millisecond)
	m.ObserveRequest("/cart", http.StatusOK, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/cart", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LatencyMS))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewServerMetrics(prometheus.NewRegistry())
	m.OrderPlaced("UPI", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `flavourhub_orders_placed_total{payment_method="UPI",result="ok"} 1`)
}
