// Package pprofserver exposes runtime profiles on a separate listener.
// Loopback clients pass through; everyone else needs basic auth.
package pprofserver

import (
	"crypto/subtle"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"laundry-service/internal/logx"
)

// Config stores pprof server settings.
type Config struct {
	Addr string
	User string
	Pass string
}

var namedProfiles = []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"}

const unauthorizedBody = `{"success":false,"error":"unauthorized"}` + "\n"

// New builds the profiling server. It is not started.
func New(cfg Config, logger logx.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Handler(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		// profile and trace stream for up to 30s by default
		WriteTimeout: 60 * time.Second,
	}
}

// Handler returns pprof handlers guarded by authOrLocalOnly.
func Handler(cfg Config, logger logx.Logger) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	for _, name := range namedProfiles {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return authOrLocalOnly(mux, cfg, logger)
}

func authOrLocalOnly(next http.Handler, cfg Config, logger logx.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) || authorized(r, cfg) {
			next.ServeHTTP(w, r)
			return
		}
		logger.Warn("pprof access denied",
			logx.String("remote_addr", r.RemoteAddr),
			logx.String("path", r.URL.Path),
		)
		w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, unauthorizedBody)
	})
}

// authorized is false when no credentials are configured.
func authorized(r *http.Request, cfg Config) bool {
	if cfg.User == "" || cfg.Pass == "" {
		return false
	}
	u, p, ok := r.BasicAuth()
	return ok && secureEq(u, cfg.User) && secureEq(p, cfg.Pass)
}

func secureEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
