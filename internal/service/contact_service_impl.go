package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/model"
	"github.com/jasswanth/portfolio-backend/internal/repository"
	"github.com/jasswanth/portfolio-backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	dispatcher NotificationDispatcher

	// awaitEmails selects the deployment shape. True: dispatch on the request's
	// critical path and return the statuses (stateless functions have no
	// post-response execution). False: dispatch detached, log the outcomes.
	awaitEmails bool
}

// NewContactService creates a ContactService backed by the given repository
// and dispatcher.
func NewContactService(repo repository.ContactRepository, dispatcher NotificationDispatcher, awaitEmails bool) ContactService {
	return &contactServiceImpl{repo: repo, dispatcher: dispatcher, awaitEmails: awaitEmails}
}

// Submit validates, persists and notifies. Persistence must complete before
// any email references the message; a notification failure never turns a
// stored submission into an error.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput, meta model.RequestMeta) (*model.ContactMessage, []mail.EmailStatus, error) {
	in = validation.SanitizeInput(in)
	if errs := validation.Validate(in); len(errs) > 0 {
		return nil, nil, &validation.Error{Errors: errs}
	}
	in = validation.Normalize(in)

	msg := &model.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, nil, err
	}

	if s.awaitEmails {
		statuses := s.dispatcher.Dispatch(ctx, msg)
		logStatuses(msg.ID, statuses)
		return msg, statuses, nil
	}

	// Detached from the request context: the response goes out immediately and
	// the send outcome is only logged.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		logStatuses(msg.ID, s.dispatcher.Dispatch(ctx, msg))
	}()
	return msg, nil, nil
}

func logStatuses(id string, statuses []mail.EmailStatus) {
	for _, st := range statuses {
		if st.Sent {
			slog.Info("email sent", "channel", st.Type, "contact_id", id)
		} else {
			slog.Error("email failed", "channel", st.Type, "contact_id", id, "error", st.Error)
		}
	}
}

// List returns one page of messages ordered newest-first plus the total count.
func (s *contactServiceImpl) List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error) {
	return s.repo.List(ctx, page, limit)
}

// GetByID returns a single message including operational metadata.
func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.GetByID(ctx, id)
}

// MarkRead flips the read flag and returns the updated message.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a message.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
