package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	bookingsTotal  *prometheus.CounterVec
	chargesTotal   *prometheus.CounterVec
	chargeLatency  prometheus.Histogram
	decisionsTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "havenly",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking requests by outcome",
		}, []string{"outcome"}),
		chargesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "havenly",
			Subsystem: "payment",
			Name:      "charges_total",
			Help:      "Total simulated gateway charges",
		}, []string{"status"}),
		chargeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "havenly",
			Subsystem: "payment",
			Name:      "charge_latency_seconds",
			Help:      "Latency of simulated gateway charges",
			Buckets:   prometheus.DefBuckets,
		}),
		decisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "havenly",
			Subsystem: "booking",
			Name:      "decisions_total",
			Help:      "Total booking decisions by kind and outcome",
		}, []string{"decision", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.chargesTotal, m.chargeLatency, m.decisionsTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveCharge(status string, seconds float64) {
	if m == nil {
		return
	}
	m.chargesTotal.WithLabelValues(status).Inc()
	m.chargeLatency.Observe(seconds)
}

func (m *BookingMetrics) ObserveDecision(decision, outcome string) {
	if m == nil {
		return
	}
	m.decisionsTotal.WithLabelValues(decision, outcome).Inc()
}
