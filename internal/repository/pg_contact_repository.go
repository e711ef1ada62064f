package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jasswanth/portfolio-backend/internal/model"
	"github.com/jasswanth/portfolio-backend/internal/validation"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error)
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// checkConstraintFields maps the table's CHECK constraints to the field-level
// error the validator would have produced. The constraints are a defensive
// backstop; the application validator is the single user-facing source of truth.
var checkConstraintFields = map[string]validation.FieldError{
	"contact_messages_name_check":    {Field: "name", Message: "Name must be between 2 and 100 characters"},
	"contact_messages_email_check":   {Field: "email", Message: "Please provide a valid email address"},
	"contact_messages_subject_check": {Field: "subject", Message: "Subject must be between 3 and 200 characters"},
	"contact_messages_message_check": {Field: "message", Message: "Message must be between 10 and 5000 characters"},
}

// Create inserts a new contact_messages row and populates msg.ID and timestamps
// from the RETURNING clause. A CHECK-constraint rejection is translated to a
// *ValidationError carrying the corresponding field error.
func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, is_read, created_at, updated_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.IPAddress, msg.UserAgent,
	).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt, &msg.UpdatedAt)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		if fe, ok := checkConstraintFields[pgErr.ConstraintName]; ok {
			return &validation.Error{Errors: []validation.FieldError{fe}}
		}
		return &validation.Error{}
	}
	return err
}

// List returns one page of contact messages ordered newest-first, plus the
// total row count. The projection excludes ip_address and user_agent.
func (r *PgContactRepository) List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, is_read, created_at, updated_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID returns a single message including its operational metadata.
// Returns ErrInvalidID for a malformed identifier and ErrNotFound when absent.
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, subject, message, COALESCE(ip_address, ''), COALESCE(user_agent, ''), is_read, created_at, updated_at
		 FROM contact_messages
		 WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IPAddress, &m.UserAgent, &m.IsRead, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkRead flips is_read to true and returns the updated message. Repeat calls
// are idempotent: the row ends in the same state either way.
func (r *PgContactRepository) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`UPDATE contact_messages
		 SET is_read = true, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, email, subject, message, is_read, created_at, updated_at`,
		id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a message. Returns ErrInvalidID for a malformed identifier
// and ErrNotFound when no row matched.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
