package handlers

import (
	"errors"
	"net/http"

	"laundry-service/internal/apperr"
	"laundry-service/internal/domain"
	"laundry-service/internal/logx"
)

// StaffHandler serves HTTP endpoints for shop staff.
type StaffHandler struct {
	usecase staffUsecase
	logger  logx.Logger
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(logger logx.Logger, uc staffUsecase) *StaffHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &StaffHandler{usecase: uc, logger: logger}
}

// Create handles POST /staff.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	m, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusCreated, staffToResponse(*m))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// List handles GET /staff, optionally filtered with ?role=.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	var role *domain.StaffRole
	if s := r.URL.Query().Get("role"); s != "" {
		v := domain.StaffRole(s)
		role = &v
	}

	list, err := h.usecase.List(r.Context(), role)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, mapList(list, staffToResponse))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Update handles PUT /staff/{id}.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStaffRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u := req.toModel()
	u.ID = id

	m, err := h.usecase.Update(r.Context(), u)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, staffToResponse(*m))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "staff member not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Delete handles DELETE /staff/{id}.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, envelope{Success: true, Message: "staff member deleted"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "staff member not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}
