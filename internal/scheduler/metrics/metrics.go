package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patriot_scheduler",
			Name:      "appointments_created_total",
			Help:      "Count of appointments created by status.",
		},
		[]string{"status"},
	)

	placementSkips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patriot_scheduler",
			Name:      "placement_skips_total",
			Help:      "Count of appointments skipped during grid placement by reason.",
		},
		[]string{"reason"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patriot_scheduler",
			Name:      "logins_total",
			Help:      "Count of login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	authzDenials = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "patriot_scheduler",
			Name:      "authz_denials_total",
			Help:      "Count of permission denials.",
		},
	)
)

// Register registers all scheduler metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsCreated, placementSkips, logins, authzDenials)
	})
}

func IncAppointmentCreated(status string) {
	appointmentsCreated.WithLabelValues(status).Inc()
}

func IncPlacementSkip(reason string) {
	placementSkips.WithLabelValues(reason).Inc()
}

func IncLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}

func IncAuthzDenial() {
	authzDenials.Inc()
}
