package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"laundry-service/internal/http/middleware"
	"laundry-service/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	PickupTransitions      *metrics.PickupTransitions
	HTTP                   *middleware.HTTPMetrics
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) (metricsOut, error) {
	rl, err := registerOrExisting(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	transitions, err := registerOrExisting(reg, "pickup_status_transitions_total", metrics.NewPickupTransitionsTotal())
	if err != nil {
		return metricsOut{}, err
	}
	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return metricsOut{}, fmt.Errorf("register http metrics: %w", err)
	}
	return metricsOut{
		RateLimitExceededTotal: rl,
		PickupTransitions:      metrics.NewPickupTransitions(transitions),
		HTTP:                   httpMetrics,
	}, nil
}

// registerOrExisting returns the collector already registered under the same
// descriptor instead of failing.
func registerOrExisting[C prometheus.Collector](reg prometheus.Registerer, name string, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C
	return zero, fmt.Errorf("register %s: %w", name, err)
}
