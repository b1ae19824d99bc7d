package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// PickupHandler serves pickup/delivery scheduling and the status endpoint.
type PickupHandler struct {
	usecase pickupUsecase
	logger  logx.Logger
}

// NewPickupHandler creates a new PickupHandler.
func NewPickupHandler(logger logx.Logger, uc pickupUsecase) *PickupHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PickupHandler{usecase: uc, logger: logger}
}

func (h *PickupHandler) writeResult(w http.ResponseWriter, r *http.Request, status int, p *domain.PickupDelivery, err error) {
	switch {
	case err == nil:
		writeData(h.logger, w, r, status, pickupToResponse(*p))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "pickup not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Create handles POST /pickups.
func (h *PickupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPickupRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	p, err := h.usecase.Create(r.Context(), req.toModel())
	h.writeResult(w, r, http.StatusCreated, p, err)
}

// List handles GET /pickups, optionally filtered with ?type=pickup|delivery.
func (h *PickupHandler) List(w http.ResponseWriter, r *http.Request) {
	var kind *domain.PickupKind
	if s := r.URL.Query().Get("type"); s != "" {
		v := domain.PickupKind(s)
		kind = &v
	}

	list, err := h.usecase.List(r.Context(), kind)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, mapList(list, pickupToResponse))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Get handles GET /pickups/{id}.
func (h *PickupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.usecase.Get(r.Context(), id)
	h.writeResult(w, r, http.StatusOK, p, err)
}

// Update handles PUT /pickups/{id}.
func (h *PickupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updatePickupRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u := req.toModel()
	u.ID = id

	p, err := h.usecase.Update(r.Context(), u)
	h.writeResult(w, r, http.StatusOK, p, err)
}

// Delete handles DELETE /pickups/{id}.
func (h *PickupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, envelope{Success: true, Message: "pickup deleted"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "pickup not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Advance handles POST /pickups/{id}/advance.
func (h *PickupHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.usecase.Advance(r.Context(), id)
	h.writeResult(w, r, http.StatusOK, p, err)
}

// AssignCourier handles PUT /pickups/{id}/courier.
func (h *PickupHandler) AssignCourier(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignCourierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.CourierID == uuid.Nil {
		writeInvalid(h.logger, w, r, apperr.Invalid("courier_id is required"))
		return
	}

	p, err := h.usecase.AssignCourier(r.Context(), id, req.CourierID)
	h.writeResult(w, r, http.StatusOK, p, err)
}

// Status handles GET /pickup-status. It always answers 200; an unknown or
// malformed pickup_id is reported as not_found.
func (h *PickupHandler) Status(w http.ResponseWriter, r *http.Request) {
	var id *uuid.UUID
	if raw := r.URL.Query().Get("pickup_id"); raw != "" {
		v, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(h.logger, w, r, http.StatusOK, pickupStatusResponse{
				Success: true,
				Status:  domain.StatusNotFound,
				Message: "pickup_id is not a valid id",
			})
			return
		}
		id = &v
	}

	rep := h.usecase.Status(r.Context(), id)
	writeJSON(h.logger, w, r, http.StatusOK, statusReportToResponse(rep))
}
