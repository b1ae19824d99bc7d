package handlers

import (
	"errors"
	"net/http"

	"laundry-service/internal/apperr"
	"laundry-service/internal/logx"
)

// CatalogHandler serves the laundry service catalog.
type CatalogHandler struct {
	usecase catalogUsecase
	logger  logx.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(logger logx.Logger, uc catalogUsecase) *CatalogHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CatalogHandler{usecase: uc, logger: logger}
}

// Create handles POST /service.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, serviceToResponse(*s))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// Update handles PUT /update_service.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.usecase.Update(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, serviceToResponse(*s))
	case errors.Is(err, apperr.ErrInvalid):
		writeInvalid(h.logger, w, r, err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "service not found")
	default:
		writeInternal(h.logger, w, r, err)
	}
}

// List handles GET /services. It answers with a bare JSON array and never fails:
// a storage error degrades to an empty list.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.List(r.Context())
	if err != nil {
		h.logger.Warn("services unavailable, answering with empty list",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		list = nil
	}
	writeJSON(h.logger, w, r, http.StatusOK, mapList(list, serviceToResponse))
}

// Delete handles DELETE /services/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, envelope{Success: true, Message: "service deleted"})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "service not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "default services cannot be deleted")
	default:
		writeInternal(h.logger, w, r, err)
	}
}
