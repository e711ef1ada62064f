package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Every endpoint answers with this envelope; optional fields appear per route.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes body as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// WriteError writes a {success:false, message} body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, response{Success: false, Message: message})
}

// WriteServerError logs the underlying cause and answers with a generic 500.
// The detail is never exposed to the caller.
func WriteServerError(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	WriteError(w, http.StatusInternalServerError, "Server error. Please try again later.")
}
