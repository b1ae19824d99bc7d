package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders sets the usual browser hardening headers. HSTS is only sent in production.
func SecureHeaders(production bool) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	}
	if production {
		opts.STSSeconds = 31536000
		opts.STSIncludeSubdomains = true
	}
	return secure.New(opts).Handler
}
