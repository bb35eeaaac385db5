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

const namespace = "luxe"

// Metrics holds the HTTP and payment collectors. A nil *Metrics is a no-op.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge
	paymentIntents  *prometheus.CounterVec
	webhookEvents   *prometheus.CounterVec
}

// New registers the collectors on reg, together with the Go and process collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		paymentIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "intents_total",
			Help:      "Payment intent creations by outcome.",
		}, []string{"outcome"}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "webhook_events_total",
			Help:      "Verified payment processor webhook events by type.",
		}, []string{"type"}),
	}

	reg.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.inFlight,
		m.paymentIntents,
		m.webhookEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records latency and counts per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.inFlight.Inc()
		start := time.Now()

		// A panic is recorded as a 500 and handed on to the recoverer.
		defer func() {
			rec := recover()
			m.inFlight.Dec()

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			code := c.Writer.Status()
			if rec != nil {
				code = http.StatusInternalServerError
			}
			status := strconv.Itoa(code)
			m.requestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(c.Request.Method, route, status).Inc()

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}

func (m *Metrics) ObservePaymentIntent(outcome string) {
	if m == nil {
		return
	}
	m.paymentIntents.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveWebhookEvent(eventType string) {
	if m == nil {
		return
	}
	if eventType == "" {
		eventType = "unknown"
	}
	m.webhookEvents.WithLabelValues(eventType).Inc()
}

// Handler exposes the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
