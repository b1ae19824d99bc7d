package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
	"laundry-service/internal/repository/memory"
	"laundry-service/internal/store"
	testlog "laundry-service/internal/testutil"
)

func withStubNewPool(t *testing.T, stub func(context.Context, string) (*pgxpool.Pool, error)) {
	t.Helper()
	orig := newPool
	newPool = stub
	t.Cleanup(func() { newPool = orig })
}

func TestConnectDbWithRetry_SuccessFirstAttempt(t *testing.T) {
	wantPool := &pgxpool.Pool{}
	calls := 0

	withStubNewPool(t, func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		calls++
		return wantPool, nil
	})

	rec := testlog.New()
	pool, err := connectDbWithRetry(context.Background(), rec.Logger(), "postgres://stub", 3, 10*time.Millisecond)
	require.NoError(t, err)
	require.Same(t, wantPool, pool)
	require.Equal(t, 1, calls)

	e, ok := rec.Find("db connected")
	require.True(t, ok)
	attempt, _ := e.Field("attempt")
	require.Equal(t, 1, attempt)
}

func TestConnectDbWithRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	withStubNewPool(t, func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("not yet")
		}
		return &pgxpool.Pool{}, nil
	})

	pool, err := connectDbWithRetry(context.Background(), logx.Nop(), "postgres://stub", 5, 0)
	require.NoError(t, err)
	require.NotNil(t, pool)
	require.Equal(t, 3, calls)
}

func TestConnectDbWithRetry_ExhaustsRetries(t *testing.T) {
	sentinelErr := errors.New("db boom")
	calls := 0

	withStubNewPool(t, func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		calls++
		return nil, sentinelErr
	})

	pool, err := connectDbWithRetry(context.Background(), logx.Nop(), "postgres://stub", 3, 0)
	require.Error(t, err)
	require.Nil(t, pool)
	require.Equal(t, 3, calls)
	require.ErrorIs(t, err, sentinelErr)
}

func TestConnectDbWithRetry_ContextCanceledBetweenRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	withStubNewPool(t, func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		return nil, errors.New("db boom")
	})

	pool, err := connectDbWithRetry(ctx, logx.Nop(), "postgres://stub", 3, 50*time.Millisecond)
	require.Error(t, err)
	require.Nil(t, pool)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProvideRepositories_MemoryWithoutPool(t *testing.T) {
	t.Parallel()

	repos, err := provideRepositories(context.Background(), nil, logx.Nop())
	require.NoError(t, err)

	list, err := repos.services.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, s := range list {
		require.True(t, s.IsDefault)
	}
}

func TestSeedDefaultServices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty catalog gets defaults", func(t *testing.T) {
		services := memory.NewServiceRepo(store.New(store.State{}))
		rec := testlog.New()

		require.NoError(t, seedDefaultServices(ctx, services, rec.Logger()))

		list, err := services.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		_, ok := rec.Find("default services seeded")
		require.True(t, ok)
	})

	t.Run("existing defaults are left alone", func(t *testing.T) {
		services := memory.NewServiceRepo(store.New(store.Seed(time.Now())))

		require.NoError(t, seedDefaultServices(ctx, services, logx.Nop()))

		list, err := services.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
	})

	t.Run("list error", func(t *testing.T) {
		err := seedDefaultServices(ctx, failingServices{}, logx.Nop())
		require.ErrorContains(t, err, "seed services")
	})
}

type failingServices struct{ serviceStore }

func (failingServices) List(context.Context) ([]domain.LaundryService, error) {
	return nil, errors.New("down")
}
