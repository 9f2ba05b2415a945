package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart mutation and persistence outcomes.
type CartMetrics struct {
	mutations       *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
	notifications   prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	storageFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_storage_failures_total",
		Help: "Failed cart blob loads and saves.",
	}, []string{"op"})
	notifications := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_notifications_total",
		Help: "Add-to-cart notifications emitted.",
	})
	reg.MustRegister(mutations, storageFailures, notifications)
	return &CartMetrics{
		mutations:       mutations,
		storageFailures: storageFailures,
		notifications:   notifications,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncStorageFailure increments the storage failure counter for load/save.
func (c *CartMetrics) IncStorageFailure(op string) {
	if c == nil || c.storageFailures == nil {
		return
	}
	c.storageFailures.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncNotification counts one emitted add-to-cart notification.
func (c *CartMetrics) IncNotification() {
	if c == nil || c.notifications == nil {
		return
	}
	c.notifications.Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
