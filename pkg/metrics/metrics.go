package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics covers the HTTP edge; LoanMetrics covers checkout-engine outcomes.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookhaven",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bookhaven",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

func (m *ServerMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			path := c.Path()
			m.Requests.WithLabelValues(path, strconv.Itoa(c.Response().Status)).Inc()
			m.LatencyMS.WithLabelValues(path).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

type LoanMetrics struct {
	CheckoutOutcomes *prometheus.CounterVec
	StockAlerts      *prometheus.CounterVec
	WaitlistDrained  prometheus.Counter
}

func NewLoanMetrics(service string) *LoanMetrics {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookhaven",
		Subsystem: service,
		Name:      "checkout_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookhaven",
		Subsystem: service,
		Name:      "stock_alerts_total",
		Help:      "Stock alerts emitted after committed checkouts.",
	}, []string{"severity"})
	drained := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bookhaven",
		Subsystem: service,
		Name:      "waitlist_entries_drained_total",
		Help:      "Waitlist entries notified on stock replenishment.",
	})

	prometheus.MustRegister(outcomes, alerts, drained)
	return &LoanMetrics{CheckoutOutcomes: outcomes, StockAlerts: alerts, WaitlistDrained: drained}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
