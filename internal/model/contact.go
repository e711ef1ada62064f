package model

import "time"

// ContactMessage represents a message submitted via the portfolio contact form.
// IPAddress and UserAgent are operational metadata captured from the request;
// they are excluded from JSON output and from list projections by default.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IPAddress string    `json:"-"`
	UserAgent string    `json:"-"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInput is the untrusted request body of a contact submission.
// All fields pass through validation.Validate before anything else touches them.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// RequestMeta carries operational metadata extracted from the HTTP request,
// stored alongside the message and included in the owner notification email.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// PublicFields is the projection of a freshly created message returned to the
// submitter: no ip/ua, no read flag.
type PublicFields struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the submitter-facing projection of m.
func (m *ContactMessage) Public() PublicFields {
	return PublicFields{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
	}
}
