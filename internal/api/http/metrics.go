package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/rental"
)

const (
	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

func outcomeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return outcomeInvalid
	case http.StatusNotFound:
		return outcomeNotFound
	case http.StatusConflict:
		return outcomeConflict
	default:
		return outcomeError
	}
}

// Metrics holds the Prometheus collectors for the API. Each instance owns
// its registry, so tests can build independent servers.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	checkouts *prometheus.CounterVec
	revenue   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rentatool",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rentatool",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rentatool",
			Name:      "checkouts_total",
			Help:      "Checkout attempts by tool code and outcome.",
		}, []string{"code", "outcome"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rentatool",
			Name:      "checkout_final_charge_dollars_total",
			Help:      "Sum of final charges of completed checkouts.",
		}, []string{"code"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.checkouts, m.revenue,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observeCheckout records a checkout attempt. Unknown or missing codes are
// folded into one label value to bound cardinality.
func (m *Metrics) observeCheckout(code, outcome string, a *rental.Agreement) {
	if m == nil {
		return
	}
	if a != nil {
		code = a.Code().String()
		m.revenue.WithLabelValues(code).Add(a.FinalCharge().InexactFloat64())
	} else {
		code = knownCodeLabel(code)
	}
	m.checkouts.WithLabelValues(code, outcome).Inc()
}

// instrument is router middleware; it runs after route matching so the path
// template is available as the route label
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

func knownCodeLabel(code string) string {
	c, err := domain.ParseCode(code)
	if err != nil {
		return "unknown"
	}
	return c.String()
}
