package handlers

import (
	"errors"
	"net/http"

	"laundry-service/internal/apperr"
	"laundry-service/internal/logx"
)

// OrderHandler serves HTTP endpoints for laundry orders.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{usecase: uc, logger: logger}
}

// Create handles POST /create_order and POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, orderToResponse(*o))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Edit handles POST|PUT /orders/edit with partial updates from the request body.
func (h *OrderHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.usecase.Update(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, orderToResponse(*o))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "invalid order id")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.List(r.Context())
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeData(h.logger, w, r, http.StatusOK, mapList(list, orderToResponse))
}

// ListOpen handles GET /orders/open.
func (h *OrderHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListOpen(r.Context())
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeData(h.logger, w, r, http.StatusOK, mapList(list, orderToResponse))
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, envelope{Success: true, Message: "order deleted"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}
