package metrics

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const namespace = "healthtrack"

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	goalMutations     *prometheus.CounterVec
	milestonesReached prometheus.Counter
	goalsCompleted    prometheus.Counter
	eventsIngested    *prometheus.CounterVec
	eventsRejected    prometheus.Counter
	persistFailures   *prometheus.CounterVec
	reminderFailures  prometheus.Counter
	healthScore       prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		goalMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_mutations_total",
			Help:      "Goal engine mutations by operation.",
		}, []string{"op"}),
		milestonesReached: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milestones_reached_total",
			Help:      "Milestones marked reached.",
		}),
		goalsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goals_completed_total",
			Help:      "Goals transitioned to completed.",
		}),
		eventsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_ingested_total",
			Help:      "Logged events accepted by kind.",
		}, []string{"kind"}),
		eventsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_rejected_total",
			Help:      "Logged events rejected at validation.",
		}),
		persistFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Failed saves by store.",
		}, []string{"store"}),
		reminderFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_failures_total",
			Help:      "Reminder schedule or cancel calls that failed.",
		}),
		healthScore: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "health_score",
			Help:      "Most recently computed health score.",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the private registry for scraping. A nil *Metrics serves an
// empty exposition.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) GoalMutation(op string) {
	if m == nil {
		return
	}
	m.goalMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) MilestoneReached() {
	if m == nil {
		return
	}
	m.milestonesReached.Inc()
}

func (m *Metrics) GoalCompleted() {
	if m == nil {
		return
	}
	m.goalsCompleted.Inc()
}

func (m *Metrics) EventIngested(kind string) {
	if m == nil {
		return
	}
	m.eventsIngested.WithLabelValues(kind).Inc()
}

func (m *Metrics) EventRejected() {
	if m == nil {
		return
	}
	m.eventsRejected.Inc()
}

func (m *Metrics) PersistFailed(store string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(store).Inc()
}

func (m *Metrics) ReminderFailed() {
	if m == nil {
		return
	}
	m.reminderFailures.Inc()
}

func (m *Metrics) SetHealthScore(v float64) {
	if m == nil {
		return
	}
	m.healthScore.Set(v)
}

// WriteText writes every registered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
