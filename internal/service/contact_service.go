package service

import (
	"context"

	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/model"
)

// ContactService orchestrates the contact-submission pipeline and the
// admin-facing read/mutate operations.
type ContactService interface {
	// Submit runs validation, persists the message, and dispatches the two
	// notification emails. The returned statuses are non-nil only when the
	// service is configured to await email dispatch (the stateless deployment
	// shape); otherwise dispatch runs detached and outcomes are logged.
	Submit(ctx context.Context, in model.ContactInput, meta model.RequestMeta) (*model.ContactMessage, []mail.EmailStatus, error)
	List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error)
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// NotificationDispatcher sends both contact emails and reports per-channel
// outcomes. Satisfied by *mail.Dispatcher; substituted in tests.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, msg *model.ContactMessage) []mail.EmailStatus
}
