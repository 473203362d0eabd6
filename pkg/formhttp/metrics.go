package formhttp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes recorded by Metrics.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeBadBody  = "bad_request"
	OutcomeFailed   = "failed"
)

// Metrics counts submissions per form and outcome and times their handling.
type Metrics struct {
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the submission metrics on reg under namespace
// ("formkit" when empty). A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "formkit"
	}
	factory := promauto.With(reg)

	return &Metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of form submissions by outcome",
		}, []string{"form", "outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Form submission handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form"}),
	}
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(form, outcome string, since time.Time) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(form, outcome).Inc()
	m.duration.WithLabelValues(form).Observe(time.Since(since).Seconds())
}
