package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	availabilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Availability checks by outcome",
		},
		[]string{"result"},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings admitted in Pending status",
		},
	)

	bookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Admission attempts rejected by the conflict check",
		},
		[]string{"operation"},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_status_transitions_total",
			Help: "Booking status transitions applied",
		},
		[]string{"to"},
	)
)

func ObserveAvailabilityCheck(available bool) {
	result := "available"
	if !available {
		result = "conflict"
	}
	availabilityChecks.WithLabelValues(result).Inc()
}

func ObserveBookingCreated() {
	bookingsCreated.Inc()
}

func ObserveBookingConflict(operation string) {
	bookingConflicts.WithLabelValues(operation).Inc()
}

func ObserveStatusTransition(to string) {
	statusTransitions.WithLabelValues(to).Inc()
}
