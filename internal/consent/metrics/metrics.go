package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for adapter operations.
type Metrics struct {
	Operations           *prometheus.CounterVec
	OperationLatency     *prometheus.HistogramVec
	NotificationsSent    *prometheus.CounterVec
	NotificationsDropped *prometheus.CounterVec
	DialogsPresented     *prometheus.CounterVec
	SnapshotKeys         prometheus.Histogram
	IABReadFailures      prometheus.Counter
}

// New registers and returns adapter metrics collectors with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmpref_consent_operations_total",
			Help: "Total number of adapter consent operations, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		OperationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cmpref_consent_operation_latency_seconds",
			Help:    "Latency of adapter consent operations in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
		NotificationsSent: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmpref_consent_notifications_sent_total",
			Help: "Change notifications delivered to the delegate, labeled by key kind",
		}, []string{"kind"}),
		NotificationsDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmpref_consent_notifications_dropped_total",
			Help: "Change notifications dropped because no delegate was registered, labeled by reason",
		}, []string{"reason"}),
		DialogsPresented: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cmpref_consent_dialogs_presented_total",
			Help: "Consent dialogs presented, labeled by dialog type and outcome",
		}, []string{"dialog_type", "outcome"}),
		SnapshotKeys: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cmpref_consent_snapshot_keys",
			Help:    "Distribution of key counts per consent snapshot",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		IABReadFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "cmpref_consent_iab_read_failures_total",
			Help: "Total number of failed IAB string reads",
		}),
	}
}

func (m *Metrics) IncrementOperation(operation, outcome string) {
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveOperationLatency(operation string, durationSeconds float64) {
	m.OperationLatency.WithLabelValues(operation).Observe(durationSeconds)
}

func (m *Metrics) IncrementNotificationSent(kind string) {
	m.NotificationsSent.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementNotificationDropped(reason string) {
	m.NotificationsDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementDialogPresented(dialogType, outcome string) {
	m.DialogsPresented.WithLabelValues(dialogType, outcome).Inc()
}

// ObserveSnapshotKeys records the number of keys in a built snapshot.
func (m *Metrics) ObserveSnapshotKeys(count float64) {
	m.SnapshotKeys.Observe(count)
}

func (m *Metrics) IncrementIABReadFailures() {
	m.IABReadFailures.Inc()
}
