package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"laundry-service/internal/config"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
	"laundry-service/internal/repository"
	"laundry-service/internal/repository/memory"
	"laundry-service/internal/store"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

var newPool = repository.NewPool

func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

type customerStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
}

type orderStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, openOnly bool) ([]domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type serviceStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.LaundryService, error)
	List(ctx context.Context) ([]domain.LaundryService, error)
	Create(ctx context.Context, s *domain.LaundryService) error
	Update(ctx context.Context, s *domain.LaundryService) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type staffStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context, role *domain.StaffRole) ([]domain.Staff, error)
	Create(ctx context.Context, s *domain.Staff) error
	Update(ctx context.Context, s *domain.Staff) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type pickupStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PickupDelivery, error)
	Latest(ctx context.Context) (*domain.PickupDelivery, error)
	List(ctx context.Context, kind *domain.PickupKind) ([]domain.PickupDelivery, error)
	Create(ctx context.Context, p *domain.PickupDelivery) error
	Update(ctx context.Context, p *domain.PickupDelivery) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// repositories is the storage backend picked at startup.
type repositories struct {
	customers customerStore
	orders    orderStore
	services  serviceStore
	staff     staffStore
	pickups   pickupStore
}

func postgresRepositories(pool *pgxpool.Pool) *repositories {
	return &repositories{
		customers: repository.NewCustomerRepo(pool),
		orders:    repository.NewOrderRepo(pool),
		services:  repository.NewServiceRepo(pool),
		staff:     repository.NewStaffRepo(pool),
		pickups:   repository.NewPickupRepo(pool),
	}
}

func memoryRepositories(st *store.Store) *repositories {
	return &repositories{
		customers: memory.NewCustomerRepo(st),
		orders:    memory.NewOrderRepo(st),
		services:  memory.NewServiceRepo(st),
		staff:     memory.NewStaffRepo(st),
		pickups:   memory.NewPickupRepo(st),
	}
}

// providePool returns a nil pool when no database is configured.
func providePool(connect dbConnectFunc) func(context.Context, *config.Config, logx.Logger) (*pgxpool.Pool, error) {
	return func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		if !cfg.DB.Configured() {
			logger.Warn("database not configured, serving from in-memory store")
			return nil, nil
		}
		pool, err := connect(ctx, logger, cfg.DB.URL, cfg.DB.ConnectRetries, cfg.DB.ConnectDelay)
		if err != nil {
			return nil, err
		}
		if cfg.DB.Migrate {
			if err := repository.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return pool, nil
	}
}

func provideRepositories(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger) (*repositories, error) {
	if pool == nil {
		return memoryRepositories(store.New(store.Seed(time.Now().UTC()))), nil
	}
	repos := postgresRepositories(pool)
	if err := seedDefaultServices(ctx, repos.services, logger); err != nil {
		return nil, err
	}
	return repos, nil
}

// seedDefaultServices inserts the default services into an empty catalog.
func seedDefaultServices(ctx context.Context, services serviceStore, logger logx.Logger) error {
	list, err := services.List(ctx)
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	for _, s := range list {
		if s.IsDefault {
			return nil
		}
	}
	defaults := store.Seed(time.Now().UTC()).Services
	for i := range defaults {
		if err := services.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
	}
	logger.Info("default services seeded", logx.Int("count", len(defaults)))
	return nil
}
