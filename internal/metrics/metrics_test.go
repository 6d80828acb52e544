package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCheckoutOutcome(t *testing.T) {
	before := testutil.ToFloat64(checkoutOutcomes.WithLabelValues("succeeded"))

	RecordCheckoutOutcome("succeeded")
	RecordCheckoutOutcome("succeeded")

	assert.Equal(t, before+2, testutil.ToFloat64(checkoutOutcomes.WithLabelValues("succeeded")))
}

func TestRecordPaymentOutcome(t *testing.T) {
	before := testutil.ToFloat64(paymentOutcomes.WithLabelValues("cancelled"))

	RecordPaymentOutcome("cancelled")

	assert.Equal(t, before+1, testutil.ToFloat64(paymentOutcomes.WithLabelValues("cancelled")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/cart", "200"))

	ObserveHTTP("GET", "/api/cart", "200", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/cart", "200")))
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	assert.GreaterOrEqual(t, timer.Duration(), time.Duration(0))

	assert.NotPanics(t, func() {
		timer.ObserveBackend("cart.get", nil)
		timer.ObserveBackend("cart.get", errors.New("boom"))
	})
}
