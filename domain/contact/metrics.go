package contact

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the contact pipeline collectors. A nil *Metrics records nothing.
type Metrics struct {
	submissions *prometheus.CounterVec
	invalid     *prometheus.CounterVec
	busy        prometheus.Counter
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the contact collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bigeen_contact_submissions_total",
			Help: "Contact submissions that reached the sink stage, by sink and outcome",
		}, []string{"sink", "outcome"}),
		invalid: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bigeen_contact_validation_failures_total",
			Help: "Invalid fields on blocked submissions",
		}, []string{"field"}),
		busy: f.NewCounter(prometheus.CounterOpts{
			Name: "bigeen_contact_submit_in_progress_total",
			Help: "Submit calls rejected because a submission was already in flight",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigeen_contact_delivery_duration_seconds",
			Help:    "Duration of delivery attempts",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}, []string{"sink"}),
	}
}

func (m *Metrics) observeOutcome(sink, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(sink, outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(sink).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) observeInvalid(errs ValidationErrors) {
	if m == nil {
		return
	}
	for field := range errs {
		m.invalid.WithLabelValues(string(field)).Inc()
	}
}

func (m *Metrics) observeBusy() {
	if m == nil {
		return
	}
	m.busy.Inc()
}
