package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"laundry-service/internal/apperr"
	"laundry-service/internal/logx"
)

// envelope is the response shape shared by every JSON endpoint.
type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Path    string   `json:"path,omitempty"`
	Message string   `json:"message,omitempty"`
}

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil && logger != nil {
		logger.Error("json encode error",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

func writeData(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(logger, w, r, status, envelope{Success: true, Data: data})
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	if logger != nil {
		logger.Warn("http error",
			logx.String("request_id", reqID(r.Context())),
			logx.Int("status", status),
			logx.String("path", r.URL.Path),
			logx.String("msg", msg),
		)
	}
	writeJSON(logger, w, r, status, envelope{Error: msg})
}

// writeInvalid answers 400 with the validation messages carried by err.
func writeInvalid(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	msgs := apperr.Messages(err)
	if len(msgs) == 0 {
		msgs = []string{err.Error()}
	}
	if logger != nil {
		logger.Warn("http error",
			logx.String("request_id", reqID(r.Context())),
			logx.Int("status", http.StatusBadRequest),
			logx.String("path", r.URL.Path),
			logx.Any("errors", msgs),
		)
	}
	writeJSON(logger, w, r, http.StatusBadRequest, envelope{Error: apperr.ErrInvalid.Error(), Errors: msgs})
}

func writeInternal(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if logger != nil {
		logger.Error("request failed",
			logx.String("request_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
	}
	writeJSON(logger, w, r, http.StatusInternalServerError, envelope{Error: "internal error"})
}

const (
	bodyLimit = 1 << 20
)

// decodeJSON reads exactly one JSON value into dst and runs struct validation on it.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	if msgs := validateStruct(dst); len(msgs) > 0 {
		writeInvalid(logger, w, r, apperr.Invalid(msgs...))
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

func optionalInt(r *http.Request, key string) (*int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + key)
	}
	return &v, nil
}
