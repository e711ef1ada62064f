package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/model"
	"github.com/jasswanth/portfolio-backend/internal/repository"
	"github.com/jasswanth/portfolio-backend/internal/validation"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc   func(ctx context.Context, msg *model.ContactMessage) error
	listFunc     func(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error)
	getByIDFunc  func(ctx context.Context, id string) (*model.ContactMessage, error)
	markReadFunc func(ctx context.Context, id string) (*model.ContactMessage, error)
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	msg.ID = "11111111-2222-4333-8444-555555555555"
	msg.CreatedAt = time.Now().UTC()
	msg.UpdatedAt = msg.CreatedAt
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, limit)
	}
	return nil, 0, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repository.ErrNotFound
}

type mockDispatcher struct {
	dispatchFunc func(ctx context.Context, msg *model.ContactMessage) []mail.EmailStatus
	dispatched   chan *model.ContactMessage
}

func (m *mockDispatcher) Dispatch(ctx context.Context, msg *model.ContactMessage) []mail.EmailStatus {
	if m.dispatched != nil {
		m.dispatched <- msg
	}
	if m.dispatchFunc != nil {
		return m.dispatchFunc(ctx, msg)
	}
	return []mail.EmailStatus{
		{Type: mail.ChannelAutoReply, Sent: true},
		{Type: mail.ChannelNotification, Sent: true},
	}
}

func validInput() model.ContactInput {
	return model.ContactInput{
		Name:    "Alice",
		Email:   "Alice@Example.com",
		Subject: "Hello there",
		Message: "This message is long enough to pass validation.",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestSubmit_PersistsNormalizedInputWithMeta(t *testing.T) {
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			msg.ID = "id-1"
			return nil
		},
	}
	svc := NewContactService(repo, &mockDispatcher{}, true)

	meta := model.RequestMeta{IPAddress: "198.51.100.9", UserAgent: "Mozilla/5.0"}
	msg, _, err := svc.Submit(context.Background(), validInput(), meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Create to be called")
	}
	if saved.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", saved.Email)
	}
	if saved.IPAddress != "198.51.100.9" || saved.UserAgent != "Mozilla/5.0" {
		t.Errorf("expected request meta attached, got %+v", saved)
	}
	if msg.ID != "id-1" {
		t.Errorf("expected created entity returned, got %+v", msg)
	}
}

func TestSubmit_InvalidInputNeverTouchesRepository(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			t.Error("Create must not be called for invalid input")
			return nil
		},
	}
	svc := NewContactService(repo, &mockDispatcher{}, true)

	in := validInput()
	in.Email = "not-an-email"
	_, _, err := svc.Submit(context.Background(), in, model.RequestMeta{})

	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "email" {
		t.Errorf("unexpected field errors: %+v", ve.Errors)
	}
}

func TestSubmit_SanitizesBeforeValidation(t *testing.T) {
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	svc := NewContactService(repo, &mockDispatcher{}, true)

	in := validInput()
	in.Name = "Ali$ce"
	if _, _, err := svc.Submit(context.Background(), in, model.RequestMeta{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Name != "Alice" {
		t.Errorf("expected sanitized name, got %q", saved.Name)
	}
}

func TestSubmit_PersistenceFailureIsFatal(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return boom
		},
	}
	dispatcher := &mockDispatcher{
		dispatchFunc: func(ctx context.Context, msg *model.ContactMessage) []mail.EmailStatus {
			t.Error("Dispatch must not run when persistence failed")
			return nil
		},
	}
	svc := NewContactService(repo, dispatcher, true)

	_, _, err := svc.Submit(context.Background(), validInput(), model.RequestMeta{})
	if !errors.Is(err, boom) {
		t.Errorf("expected persistence error surfaced, got %v", err)
	}
}

// Awaited shape: email statuses come back with the submission, and a failed
// channel does not turn the submission into an error.
func TestSubmit_AwaitedReturnsStatuses(t *testing.T) {
	dispatcher := &mockDispatcher{
		dispatchFunc: func(ctx context.Context, msg *model.ContactMessage) []mail.EmailStatus {
			return []mail.EmailStatus{
				{Type: mail.ChannelAutoReply, Sent: false, Error: "smtp down"},
				{Type: mail.ChannelNotification, Sent: true},
			}
		},
	}
	svc := NewContactService(&mockContactRepository{}, dispatcher, true)

	msg, statuses, err := svc.Submit(context.Background(), validInput(), model.RequestMeta{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == nil {
		t.Fatal("expected created message")
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %v", statuses)
	}
	if statuses[0].Sent || statuses[0].Error != "smtp down" {
		t.Errorf("expected auto-reply failure recorded, got %+v", statuses[0])
	}
	if !statuses[1].Sent {
		t.Errorf("expected notification success, got %+v", statuses[1])
	}
}

// Detached shape: Submit returns no statuses immediately, and dispatch still
// happens in the background with the persisted message.
func TestSubmit_DetachedDispatchesInBackground(t *testing.T) {
	dispatcher := &mockDispatcher{dispatched: make(chan *model.ContactMessage, 1)}
	svc := NewContactService(&mockContactRepository{}, dispatcher, false)

	_, statuses, err := svc.Submit(context.Background(), validInput(), model.RequestMeta{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statuses != nil {
		t.Errorf("detached shape must not report statuses, got %v", statuses)
	}

	select {
	case msg := <-dispatcher.dispatched:
		if msg.ID == "" {
			t.Error("dispatch must only see a persisted message")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("background dispatch never ran")
	}
}

// ---------------------------------------------------------------------------
// Passthroughs
// ---------------------------------------------------------------------------

func TestMarkRead_Passthrough(t *testing.T) {
	calls := 0
	repo := &mockContactRepository{
		markReadFunc: func(ctx context.Context, id string) (*model.ContactMessage, error) {
			calls++
			return &model.ContactMessage{ID: id, IsRead: true}, nil
		},
	}
	svc := NewContactService(repo, &mockDispatcher{}, true)

	// Repeat calls are idempotent at the service level too.
	for i := 0; i < 2; i++ {
		msg, err := svc.MarkRead(context.Background(), "some-id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !msg.IsRead {
			t.Error("expected IsRead=true")
		}
	}
	if calls != 2 {
		t.Errorf("expected repository hit per call, got %d", calls)
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, &mockDispatcher{}, true)
	_, err := svc.MarkRead(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_Passthrough(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error) {
			if page != 2 || limit != 5 {
				t.Errorf("expected page=2 limit=5, got %d/%d", page, limit)
			}
			return []*model.ContactMessage{{ID: "a"}}, 11, nil
		},
	}
	svc := NewContactService(repo, &mockDispatcher{}, true)

	msgs, total, err := svc.List(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || total != 11 {
		t.Errorf("unexpected result: %d messages, total %d", len(msgs), total)
	}
}
