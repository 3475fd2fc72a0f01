package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wassce_checker"

// Prometheus owns its registry so several instances can coexist in tests.
type Prometheus struct {
	registry *prometheus.Registry

	reconciles      *prometheus.CounterVec
	reconcileTime   *prometheus.HistogramVec
	webhooks        *prometheus.CounterVec
	deliveries      *prometheus.CounterVec
	codesIngested   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpRequestTime *prometheus.HistogramVec
}

func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		reconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fulfillment",
			Name:      "reconciles_total",
			Help:      "Payment confirmations reconciled, by outcome.",
		}, []string{"outcome"}),
		reconcileTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fulfillment",
			Name:      "reconcile_duration_seconds",
			Help:      "Time spent reconciling one payment confirmation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Payment provider callbacks, by handling result.",
		}, []string{"result"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "delivery",
			Name:      "attempts_total",
			Help:      "Email delivery attempts, by job kind and status.",
		}, []string{"kind", "status"}),
		codesIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "codes_ingested_total",
			Help:      "Uploaded codes, split into inserted and skipped duplicates.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"method", "route", "code"}),
		httpRequestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.reconciles, p.reconcileTime, p.webhooks, p.deliveries, p.codesIngested,
		p.httpRequests, p.httpRequestTime,
	)
	return p
}

func (p *Prometheus) ObserveReconcile(outcome fulfillment.Outcome, elapsed time.Duration) {
	p.reconciles.WithLabelValues(string(outcome)).Inc()
	p.reconcileTime.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveWebhook(result string) {
	p.webhooks.WithLabelValues(result).Inc()
}

func (p *Prometheus) ObserveDelivery(kind string, status delivery.Status) {
	p.deliveries.WithLabelValues(kind, string(status)).Inc()
}

func (p *Prometheus) ObserveIngest(inserted, skipped int) {
	p.codesIngested.WithLabelValues("inserted").Add(float64(inserted))
	p.codesIngested.WithLabelValues("skipped").Add(float64(skipped))
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Middleware records request count and latency by route template, never by
// raw path, to keep label cardinality bounded.
func (p *Prometheus) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		p.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		p.httpRequestTime.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
