package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/dig"

	"laundry-service/internal/config"
	"laundry-service/internal/logx"
	"laundry-service/internal/metrics"
	"laundry-service/internal/service/catalog"
	"laundry-service/internal/service/customer"
	"laundry-service/internal/service/order"
	"laundry-service/internal/service/pickup"
	"laundry-service/internal/service/staff"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	loadCfg   func() (*config.Config, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		loadCfg:   config.Load,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithConfig replaces config loading with a fixed config.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadCfg = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadCfg); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadCfg func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadCfg,
		NewLogger,
		newRegistry,
		provideMetrics,
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
	)
}

func registerStorage(container *dig.Container, connect dbConnectFunc) error {
	return provideAll(container,
		providePool(connect),
		provideRepositories,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(r *repositories, timeout time.Duration, logger logx.Logger) *customer.Service {
			return customer.NewService(r.customers, timeout, logger)
		},
		func(r *repositories, timeout time.Duration, logger logx.Logger) *order.Service {
			return order.NewService(r.orders, r.services, timeout, logger)
		},
		func(r *repositories, timeout time.Duration, logger logx.Logger) *catalog.Service {
			return catalog.NewService(r.services, timeout, logger)
		},
		func(r *repositories, timeout time.Duration) *staff.Service {
			return staff.NewService(r.staff, timeout)
		},
		func(r *repositories, timeout time.Duration, logger logx.Logger, rec *metrics.PickupTransitions) *pickup.Service {
			return pickup.NewService(r.pickups, r.staff, rec, timeout, logger)
		},
	)
}
