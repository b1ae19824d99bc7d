package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"laundry-service/internal/config"
	"laundry-service/internal/http/handlers"
	"laundry-service/internal/http/middleware"
	"laundry-service/internal/http/middleware/ratelimit"
	"laundry-service/internal/http/pprofserver"
	"laundry-service/internal/http/router"
	"laundry-service/internal/logx"
)

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewCustomerUsecase,
		handlers.NewCustomerHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewCatalogUsecase,
		handlers.NewCatalogHandler,
		handlers.NewStaffUsecase,
		handlers.NewStaffHandler,
		handlers.NewPickupUsecase,
		handlers.NewPickupHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServer,
		newPprofServer,
	)
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock { return ratelimit.RealClock{} }

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type routerIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Registry    *prometheus.Registry
	HTTPMetrics *middleware.HTTPMetrics
	RateLimit   *ratelimit.Middleware

	Base      *handlers.Handlers
	Customers *handlers.CustomerHandler
	Orders    *handlers.OrderHandler
	Catalog   *handlers.CatalogHandler
	Staff     *handlers.StaffHandler
	Pickups   *handlers.PickupHandler
}

// newRouter mounts the routes behind observability, panic recovery, rate
// limiting and security headers, in that order.
func newRouter(in routerIn) http.Handler {
	production := in.Config.Production()
	return router.New(router.Handlers{
		Base:      in.Base,
		Customers: in.Customers,
		Orders:    in.Orders,
		Catalog:   in.Catalog,
		Staff:     in.Staff,
		Pickups:   in.Pickups,
	}, router.Options{
		Middlewares: []func(http.Handler) http.Handler{
			middleware.Observability(in.Logger, in.HTTPMetrics),
			middleware.Recoverer(in.Logger, !production),
			in.RateLimit.Handler(),
			middleware.SecureHeaders(production),
		},
		Metrics: promhttp.HandlerFor(in.Registry, promhttp.HandlerOpts{Registry: in.Registry}),
	})
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// newPprofServer provides a nil server when profiling is disabled.
func newPprofServer(cfg *config.Config, logger logx.Logger) pprofServerOut {
	if !cfg.Pprof.Enabled {
		return pprofServerOut{}
	}
	return pprofServerOut{Server: pprofserver.New(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	}, logger)}
}
