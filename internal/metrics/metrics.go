package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genetic_miniapp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genetic_miniapp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genetic_miniapp_bookings_total",
			Help: "Total number of booking claims by outcome",
		},
		[]string{"outcome"},
	)

	SlotsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genetic_miniapp_slots_generated_total",
			Help: "Total number of availability slots computed",
		},
	)

	AuthVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genetic_miniapp_auth_verifications_total",
			Help: "Total number of initData verification attempts",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordSlotsGenerated(n int) {
	SlotsGeneratedTotal.Add(float64(n))
}

func RecordAuthVerification(result string) {
	AuthVerificationsTotal.WithLabelValues(result).Inc()
}
