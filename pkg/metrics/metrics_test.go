package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.IncBookingCreated("cash")
	m.IncBookingCreated("cash")
	m.IncBookingConflict("check")
	m.IncPromoRejected("expired")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("cash")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflictsTotal.WithLabelValues("check")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PromoRejectionsTotal.WithLabelValues("expired")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated("cash")
		m.IncBookingConflict("constraint")
		m.IncPromoRejected("not_found")
	})
}
