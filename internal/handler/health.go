package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Health handles GET /health, the liveness probe. The database is pinged so a
// dead pool surfaces as 503 rather than a healthy-looking body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.db.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Success:     false,
			Message:     "Database unreachable",
			Timestamp:   now,
			Environment: h.appEnv,
		})
		return
	}

	WriteJSON(w, http.StatusOK, healthResponse{
		Success:     true,
		Message:     "Server is running",
		Timestamp:   now,
		Environment: h.appEnv,
	})
}

type indexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET /, a small API directory.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, indexResponse{
		Success: true,
		Message: "Portfolio Backend API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"health":  "/health",
			"contact": "/api/contact",
		},
	})
}
