//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Observe(t *testing.T) {
	p := NewPrometheus()

	p.ObserveReconcile(fulfillment.OutcomeFulfilled, 20*time.Millisecond)
	p.ObserveReconcile(fulfillment.OutcomeFulfilled, 30*time.Millisecond)
	p.ObserveReconcile(fulfillment.OutcomeStockout, time.Millisecond)
	p.ObserveWebhook("replayed")
	p.ObserveDelivery("code_delivery", delivery.StatusSent)
	p.ObserveIngest(3, 2)

	assert.InDelta(t, 2, testutil.ToFloat64(p.reconciles.WithLabelValues("fulfilled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.reconciles.WithLabelValues("stockout")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.webhooks.WithLabelValues("replayed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.deliveries.WithLabelValues("code_delivery", "sent")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(p.codesIngested.WithLabelValues("inserted")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(p.codesIngested.WithLabelValues("skipped")), 0)
}

func TestPrometheus_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewPrometheus()
		_ = NewPrometheus()
	})
}

func TestPrometheus_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := NewPrometheus()

	r := gin.New()
	r.Use(p.Middleware())
	r.GET("/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(p.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/abc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(p.httpRequests.WithLabelValues("GET", "/products/:id", "200")), 0)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wassce_checker_http_requests_total")
}
