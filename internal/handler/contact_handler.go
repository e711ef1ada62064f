package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/model"
	"github.com/jasswanth/portfolio-backend/internal/repository"
	"github.com/jasswanth/portfolio-backend/internal/service"
	"github.com/jasswanth/portfolio-backend/internal/validation"
)

// ContactHandler handles contact form submission and the admin-facing
// listing/read/delete endpoints. The admin routes carry no auth here; an
// external gateway is expected in front of them.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitResponse is the 201 body for POST /api/contact. Emails is present only
// in the deployment shape that awaits notification dispatch.
type submitResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    model.PublicFields `json:"data"`
	Emails  []mail.EmailStatus `json:"emails,omitempty"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	meta := model.RequestMeta{
		IPAddress: ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	msg, statuses, err := h.contactService.Submit(r.Context(), in, meta)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			WriteJSON(w, http.StatusBadRequest, response{
				Success: false,
				Message: "Validation failed",
				Errors:  ve.Errors,
			})
			return
		}
		WriteServerError(w, "contact creation failed", err)
		return
	}

	WriteJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		Message: "Thank you for your message! I will get back to you soon.",
		Data:    msg.Public(),
		Emails:  statuses,
	})
}

// listResponse is the body for GET /api/contact.
type listResponse struct {
	Success bool                    `json:"success"`
	Count   int                     `json:"count"`
	Total   int                     `json:"total"`
	Page    int                     `json:"page"`
	Pages   int                     `json:"pages"`
	Data    []*model.ContactMessage `json:"data"`
}

// List handles GET /api/contact?page=&limit= (admin-facing).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	messages, total, err := h.contactService.List(r.Context(), page, limit)
	if err != nil {
		WriteServerError(w, "contact list failed", err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	WriteJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(messages),
		Total:   total,
		Page:    page,
		Pages:   (total + limit - 1) / limit,
		Data:    messages,
	})
}

// Get handles GET /api/contact/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	msg, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, "contact get failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, response{Success: true, Data: msg})
}

// MarkRead handles PATCH /api/contact/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	msg, err := h.contactService.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, "contact mark-read failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, response{Success: true, Message: "Contact marked as read", Data: msg})
}

// Delete handles DELETE /api/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeLookupError(w, "contact delete failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, response{Success: true, Message: "Contact message deleted successfully"})
}

// writeLookupError maps repository sentinel errors onto the id-based routes'
// 400/404 responses, and everything else onto a generic 500.
func (h *ContactHandler) writeLookupError(w http.ResponseWriter, context string, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		WriteError(w, http.StatusBadRequest, "Invalid contact ID")
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Contact message not found")
	default:
		WriteServerError(w, context, err)
	}
}
