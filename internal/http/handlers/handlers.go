package handlers

import (
	"net/http"

	"laundry-service/internal/logx"
)

// Handlers holds the service-level endpoints that are not tied to a resource.
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Logger.Warn("route not found",
		logx.String("request_id", reqID(r.Context())),
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
	)
	writeJSON(h.Logger, w, r, http.StatusNotFound, envelope{
		Error:   "route not found",
		Path:    r.URL.Path,
		Message: "The requested endpoint does not exist",
	})
}

// MethodNotAllowed returns a JSON 405 error for known routes hit with the wrong method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusMethodNotAllowed, envelope{
		Error:   "method not allowed",
		Path:    r.URL.Path,
		Message: r.Method + " is not supported on this endpoint",
	})
}
