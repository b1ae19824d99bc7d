package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPickupTransitionsTotal returns a counter of pickup/delivery status changes
// labeled by record type and target status.
func NewPickupTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pickup_status_transitions_total",
		Help: "Total number of pickup/delivery status transitions",
	}, []string{"type", "to"})
}

// PickupTransitions records status transitions into a counter vector.
type PickupTransitions struct {
	vec *prometheus.CounterVec
}

// NewPickupTransitions wraps vec. A nil vec records nothing.
func NewPickupTransitions(vec *prometheus.CounterVec) *PickupTransitions {
	return &PickupTransitions{vec: vec}
}

// Observe counts one transition of a record of the given type into status to.
func (p *PickupTransitions) Observe(kind, to string) {
	if p == nil || p.vec == nil {
		return
	}
	p.vec.WithLabelValues(kind, to).Inc()
}
