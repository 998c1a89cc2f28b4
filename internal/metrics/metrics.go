package metrics

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cabbook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route pattern.",
		},
		[]string{"method", "route"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cabbook",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted by the submission endpoint.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cabbook",
			Name:      "booking_status_transitions_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, statusTransitions)
	})
}

// IncBookingCreated counts an accepted booking submission.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncStatusTransition counts a committed status change.
func IncStatusTransition(status string) {
	statusTransitions.WithLabelValues(status).Inc()
}

// Middleware counts requests by chi route pattern once routing has run.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				httpRequests.WithLabelValues(r.Method, pattern).Inc()
			}
		}
	})
}
