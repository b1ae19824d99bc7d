package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"laundry-service/internal/logx"
)

type panicBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Recoverer turns a panic in a handler into a 500 JSON response. The stack
// trace is only sent to the client when withStack is set.
func Recoverer(logger logx.Logger, withStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				msg := fmt.Sprint(rec)
				logger.Error("panic recovered",
					logx.String("request_id", chimw.GetReqID(r.Context())),
					logx.String("path", r.URL.Path),
					logx.String("panic", msg),
					logx.String("stack", stack),
				)

				body := panicBody{Error: "internal error", Message: msg}
				if withStack {
					body.Stack = stack
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
