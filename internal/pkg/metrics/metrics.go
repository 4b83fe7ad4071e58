package metrics

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agendamento"

// Booking outcomes recorded by the booking use case
const (
	OutcomeCreated            = "created"
	OutcomeRejectedValidation = "rejected_validation"
	OutcomeRejectedConflict   = "rejected_conflict"
	OutcomeError              = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	AppointmentsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_deleted_total",
			Help:      "Appointments removed through the delete endpoint",
		},
	)
)

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

// RegisterPoolCollector exposes pgxpool statistics on reg. The gauges read
// pool on every scrape, so a registry holds the gauges of one pool only: a
// second registration fails with prometheus.AlreadyRegisteredError and leaves
// reg unchanged.
func RegisterPoolCollector(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_acquired_connections",
			Help:      "Connections currently acquired from the pool",
		}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle_connections",
			Help:      "Idle connections in the pool",
		}, func() float64 { return float64(pool.Stat().IdleConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_total_connections",
			Help:      "Total connections owned by the pool",
		}, func() float64 { return float64(pool.Stat().TotalConns()) }),
	}

	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				reg.Unregister(registered)
			}
			return fmt.Errorf("failed to register pool collector: %w", err)
		}
	}
	return nil
}
