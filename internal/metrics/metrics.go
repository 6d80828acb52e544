package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	backendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_backend_call_duration_seconds",
			Help:    "Duration of calls to the remote commerce backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	checkoutOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_outcomes_total",
			Help: "Checkout attempts by terminal state",
		},
		[]string{"state"},
	)

	paymentOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_payment_outcomes_total",
			Help: "Payment return handling by terminal state",
		},
		[]string{"state"},
	)
)

func ObserveHTTP(method, route, status string, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func RecordCheckoutOutcome(state string) {
	checkoutOutcomes.WithLabelValues(state).Inc()
}

func RecordPaymentOutcome(state string) {
	paymentOutcomes.WithLabelValues(state).Inc()
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveBackend records the elapsed time of one backend operation.
func (t *Timer) ObserveBackend(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	backendCallDuration.WithLabelValues(operation, outcome).Observe(t.Duration().Seconds())
}
