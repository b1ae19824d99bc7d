package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"laundry-service/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the service built into a container.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner that serves HTTP until the container context is done.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun runs the service and exits the process on an unexpected error.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
	Pool   *pgxpool.Pool
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		errCh := make(chan error, 2)
		startServer(in.Server, "http", in.Logger, errCh)
		if in.Pprof != nil {
			startServer(in.Pprof, "pprof", in.Logger, errCh)
		}

		var runErr error
		select {
		case <-in.Ctx.Done():
			runErr = in.Ctx.Err()
			in.Logger.Info("shutting down service-laundry")
		case runErr = <-errCh:
			in.Logger.Error("server stopped", logx.Err(runErr))
		}

		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		closeResources(in.Pool, in.Logger)
		return runErr
	})
}

func startServer(server *http.Server, name string, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("server listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, logger logx.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	logger.Info("db pool closed")
}
