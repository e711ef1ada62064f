package handler

import (
	"net/http"
	"strings"

	"github.com/jasswanth/portfolio-backend/internal/repository"
)

// Handler carries shared dependencies for the non-contact endpoints and the
// CORS policy.
type Handler struct {
	db      repository.DB
	origins map[string]bool
	appEnv  string
}

// New creates a Handler. origins is the CORS allow-list; requests without an
// Origin header (curl, mobile clients) are always permitted.
func New(db repository.DB, origins []string, appEnv string) *Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return &Handler{db: db, origins: allowed, appEnv: appEnv}
}

// CORS enforces the origin allow-list ahead of every handler. Disallowed
// origins are rejected here, before any validation or persistence runs.
// Preflight requests are answered directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.origins[strings.TrimRight(origin, "/")] {
			WriteError(w, http.StatusForbidden, "Not allowed by CORS")
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
