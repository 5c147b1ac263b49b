package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Reservation exposes counters for reservation form activity.
type Reservation struct {
	submissionsTotal   *prometheus.CounterVec
	fieldErrorsTotal   *prometheus.CounterVec
	draftRestoresTotal prometheus.Counter
}

func NewReservation(reg prometheus.Registerer) *Reservation {
	m := &Reservation{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resa",
			Subsystem: "form",
			Name:      "submissions_total",
			Help:      "Total submission attempts by terminal outcome",
		}, []string{"outcome"}),
		fieldErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resa",
			Subsystem: "form",
			Name:      "field_errors_total",
			Help:      "Total per-field validation failures shown to the user",
		}, []string{"field"}),
		draftRestoresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resa",
			Subsystem: "form",
			Name:      "draft_restores_total",
			Help:      "Total drafts rehydrated from storage on form load",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.fieldErrorsTotal, m.draftRestoresTotal)
	return m
}

var (
	defaultOnce        sync.Once
	defaultReservation *Reservation
)

// NewDefault registers the counters on the default registerer. Registration
// happens once; repeated calls return the same instance, so assembling the
// controller several times in one process does not panic.
func NewDefault() *Reservation {
	defaultOnce.Do(func() {
		defaultReservation = NewReservation(nil)
	})

	return defaultReservation
}

func (m *Reservation) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Reservation) ObserveFieldError(field string) {
	if m == nil {
		return
	}
	m.fieldErrorsTotal.WithLabelValues(field).Inc()
}

func (m *Reservation) ObserveDraftRestore() {
	if m == nil {
		return
	}
	m.draftRestoresTotal.Inc()
}
