package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"laundry-service/internal/http/handlers"
)

// Handlers groups the resource handlers mounted by New.
type Handlers struct {
	Base      *handlers.Handlers
	Customers *handlers.CustomerHandler
	Orders    *handlers.OrderHandler
	Catalog   *handlers.CatalogHandler
	Staff     *handlers.StaffHandler
	Pickups   *handlers.PickupHandler
}

// Options configures the router.
type Options struct {
	// Middlewares run after RequestID and RealIP, in order.
	Middlewares []func(http.Handler) http.Handler
	// Metrics is mounted at GET /metrics when non-nil.
	Metrics http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(opts.Middlewares...)

	r.NotFound(h.Base.NotFound)
	r.MethodNotAllowed(h.Base.MethodNotAllowed)

	r.Get("/ping", h.Base.Ping)
	r.Head("/healthcheck", h.Base.HealthcheckHead)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.Customers.Create)
		r.Get("/", h.Customers.List)
		r.Get("/details", h.Customers.Details)
	})

	r.Post("/create_order", h.Orders.Create)
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Orders.Create)
		r.Get("/", h.Orders.List)
		r.Get("/open", h.Orders.ListOpen)
		r.Post("/edit", h.Orders.Edit)
		r.Put("/edit", h.Orders.Edit)
		r.Delete("/{id}", h.Orders.Delete)
	})

	r.Post("/service", h.Catalog.Create)
	r.Put("/update_service", h.Catalog.Update)
	r.Get("/services", h.Catalog.List)
	r.Delete("/services/{id}", h.Catalog.Delete)

	r.Route("/staff", func(r chi.Router) {
		r.Post("/", h.Staff.Create)
		r.Get("/", h.Staff.List)
		r.Put("/{id}", h.Staff.Update)
		r.Delete("/{id}", h.Staff.Delete)
	})

	r.Route("/pickups", func(r chi.Router) {
		r.Post("/", h.Pickups.Create)
		r.Get("/", h.Pickups.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Pickups.Get)
			r.Put("/", h.Pickups.Update)
			r.Delete("/", h.Pickups.Delete)
			r.Post("/advance", h.Pickups.Advance)
			r.Put("/courier", h.Pickups.AssignCourier)
		})
	})
	r.Get("/pickup-status", h.Pickups.Status)

	return r
}
