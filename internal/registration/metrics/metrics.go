package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RegistrationsTotal   prometheus.Counter
	RegistrationFailures *prometheus.CounterVec
	ProvisionDuration    prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sokoni_registrations_total",
			Help: "Total number of successfully provisioned registrations",
		}),
		RegistrationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sokoni_registration_failures_total",
			Help: "Total number of failed registrations by error code",
		}, []string{"code"}),
		ProvisionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sokoni_registration_provision_duration_seconds",
			Help:    "End-to-end latency of the provisioning pipeline",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) RecordSuccess(elapsed time.Duration) {
	m.RegistrationsTotal.Inc()
	m.ProvisionDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) RecordFailure(code string, elapsed time.Duration) {
	m.RegistrationFailures.WithLabelValues(code).Inc()
	m.ProvisionDuration.Observe(elapsed.Seconds())
}
