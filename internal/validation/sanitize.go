package validation

import (
	"strings"

	"github.com/jasswanth/portfolio-backend/internal/model"
)

// SanitizeString strips query-operator characters and non-printable control
// characters from a user-supplied string. Document-store query engines treat
// "$"-prefixed tokens as operators, so "$" is removed wholesale. Newlines and
// tabs survive so multi-line messages render intact.
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "$", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		if r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizeInput applies SanitizeString to every field of a contact submission.
// Runs before Validate so length checks see the string that would be stored.
func SanitizeInput(in model.ContactInput) model.ContactInput {
	return model.ContactInput{
		Name:    SanitizeString(in.Name),
		Email:   SanitizeString(in.Email),
		Subject: SanitizeString(in.Subject),
		Message: SanitizeString(in.Message),
	}
}
