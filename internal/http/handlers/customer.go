package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/logx"
)

// CustomerHandler serves HTTP endpoints for customer resources.
type CustomerHandler struct {
	usecase customerUsecase
	logger  logx.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(logger logx.Logger, uc customerUsecase) *CustomerHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CustomerHandler{usecase: uc, logger: logger}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	c, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/customers/details?id="+c.ID.String())
		writeData(h.logger, w, r, http.StatusCreated, customerToResponse(*c))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "customer with this email already exists")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := optionalInt(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := optionalInt(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.usecase.List(r.Context(), limit, offset)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, mapList(list, customerToResponse))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Details handles GET /customers/details?id=.
func (h *CustomerHandler) Details(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeInvalid(h.logger, w, r, apperr.Invalid("id is required"))
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeInvalid(h.logger, w, r, apperr.Invalid("id must be a valid UUID"))
		return
	}

	c, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, customerToResponse(*c))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "customer not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}
