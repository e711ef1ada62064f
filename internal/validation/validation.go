package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jasswanth/portfolio-backend/internal/model"
)

// FieldError describes a single validation failure on a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates field errors into a single error value. Both the
// application validator and the store-level CHECK-constraint backstop produce
// it, so the handler renders one shape for either source.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

var (
	// Letters, whitespace, hyphens and apostrophes only.
	nameRe = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	// Deliberately loose local@domain.tld check; real deliverability is the
	// mail transport's problem.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const maxEmailLength = 254

// Validate checks an untrusted contact submission and returns every violated
// field in input order (name, email, subject, message). One error per field:
// the first violated rule wins. An empty slice means the input is valid.
// Pure function, no side effects.
func Validate(in model.ContactInput) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{"name", "Name is required"})
	case len([]rune(name)) < 2 || len([]rune(name)) > 100:
		errs = append(errs, FieldError{"name", "Name must be between 2 and 100 characters"})
	case !nameRe.MatchString(name):
		errs = append(errs, FieldError{"name", "Name can only contain letters, spaces, hyphens, and apostrophes"})
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{"email", "Email is required"})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{"email", "Please provide a valid email address"})
	case len(email) > maxEmailLength:
		errs = append(errs, FieldError{"email", "Email cannot exceed 254 characters"})
	}

	subject := strings.TrimSpace(in.Subject)
	switch {
	case subject == "":
		errs = append(errs, FieldError{"subject", "Subject is required"})
	case len([]rune(subject)) < 3 || len([]rune(subject)) > 200:
		errs = append(errs, FieldError{"subject", "Subject must be between 3 and 200 characters"})
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		errs = append(errs, FieldError{"message", "Message is required"})
	case len([]rune(message)) < 10 || len([]rune(message)) > 5000:
		errs = append(errs, FieldError{"message", "Message must be between 10 and 5000 characters"})
	}

	return errs
}

// Normalize returns the canonical form of a validated input: all fields
// trimmed, email lower-cased. Called after Validate, before persistence.
func Normalize(in model.ContactInput) model.ContactInput {
	return model.ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
}
