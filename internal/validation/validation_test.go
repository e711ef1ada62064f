package validation

import (
	"strings"
	"testing"

	"github.com/jasswanth/portfolio-backend/internal/model"
)

func validInput() model.ContactInput {
	return model.ContactInput{
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Subject: "Hello there",
		Message: "I would like to talk about a project.",
	}
}

func fieldsOf(errs []FieldError) []string {
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidate_ValidInput(t *testing.T) {
	if errs := Validate(validInput()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

// Each required field empty after trimming reports exactly that field.
func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*model.ContactInput)
	}{
		{"name", func(in *model.ContactInput) { in.Name = "   " }},
		{"email", func(in *model.ContactInput) { in.Email = "" }},
		{"subject", func(in *model.ContactInput) { in.Subject = "\t" }},
		{"message", func(in *model.ContactInput) { in.Message = "  \n " }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		errs := Validate(in)
		if len(errs) != 1 {
			t.Errorf("%s empty: expected 1 error, got %v", tc.field, errs)
			continue
		}
		if errs[0].Field != tc.field {
			t.Errorf("expected error on %s, got %s", tc.field, errs[0].Field)
		}
		if !strings.Contains(errs[0].Message, "required") {
			t.Errorf("%s: expected required message, got %q", tc.field, errs[0].Message)
		}
	}
}

func TestValidate_NameBounds(t *testing.T) {
	in := validInput()

	in.Name = "Jo"
	if errs := Validate(in); len(errs) != 0 {
		t.Errorf("2-char name should be valid, got %v", errs)
	}

	in.Name = "J"
	if errs := Validate(in); len(errs) != 1 || errs[0].Field != "name" {
		t.Errorf("1-char name should fail on name, got %v", errs)
	}

	in.Name = strings.Repeat("a", 100)
	if errs := Validate(in); len(errs) != 0 {
		t.Errorf("100-char name should be valid, got %v", errs)
	}

	in.Name = strings.Repeat("a", 101)
	if errs := Validate(in); len(errs) != 1 || errs[0].Field != "name" {
		t.Errorf("101-char name should fail on name, got %v", errs)
	}
}

func TestValidate_NamePattern(t *testing.T) {
	in := validInput()

	for _, ok := range []string{"Mary-Jane O'Neil", "Jean Luc"} {
		in.Name = ok
		if errs := Validate(in); len(errs) != 0 {
			t.Errorf("%q should be valid, got %v", ok, errs)
		}
	}

	for _, bad := range []string{"Alice42", "Bob<script>", "x@y"} {
		in.Name = bad
		errs := Validate(in)
		if len(errs) != 1 || errs[0].Field != "name" {
			t.Errorf("%q should fail on name, got %v", bad, errs)
		}
	}
}

func TestValidate_Email(t *testing.T) {
	in := validInput()

	in.Email = "a@b.co"
	if errs := Validate(in); len(errs) != 0 {
		t.Errorf("a@b.co should be valid, got %v", errs)
	}

	in.Email = "not-an-email"
	errs := Validate(in)
	if len(errs) != 1 || errs[0].Field != "email" {
		t.Fatalf("not-an-email should fail on email, got %v", errs)
	}
	if errs[0].Message != "Please provide a valid email address" {
		t.Errorf("unexpected message %q", errs[0].Message)
	}

	// 254-char ceiling: local part padded out past the limit.
	in.Email = strings.Repeat("a", 250) + "@b.co"
	if errs := Validate(in); len(errs) != 1 || errs[0].Field != "email" {
		t.Errorf("overlong email should fail on email, got %v", errs)
	}
}

func TestValidate_MessageBounds(t *testing.T) {
	in := validInput()

	cases := []struct {
		length int
		valid  bool
	}{
		{9, false},
		{10, true},
		{5000, true},
		{5001, false},
	}
	for _, tc := range cases {
		in.Message = strings.Repeat("m", tc.length)
		errs := Validate(in)
		if tc.valid && len(errs) != 0 {
			t.Errorf("message of %d chars should be valid, got %v", tc.length, errs)
		}
		if !tc.valid && (len(errs) != 1 || errs[0].Field != "message") {
			t.Errorf("message of %d chars should fail on message, got %v", tc.length, errs)
		}
	}
}

func TestValidate_SubjectBounds(t *testing.T) {
	in := validInput()

	in.Subject = "ab"
	if errs := Validate(in); len(errs) != 1 || errs[0].Field != "subject" {
		t.Errorf("2-char subject should fail on subject, got %v", errs)
	}

	in.Subject = "abc"
	if errs := Validate(in); len(errs) != 0 {
		t.Errorf("3-char subject should be valid, got %v", errs)
	}

	in.Subject = strings.Repeat("s", 201)
	if errs := Validate(in); len(errs) != 1 || errs[0].Field != "subject" {
		t.Errorf("201-char subject should fail on subject, got %v", errs)
	}
}

// All four fields invalid: every violation accumulates, in input order.
func TestValidate_AccumulatesAllFields(t *testing.T) {
	errs := Validate(model.ContactInput{})
	want := []string{"name", "email", "subject", "message"}
	got := fieldsOf(errs)
	if len(got) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("error %d: expected field %s, got %s", i, want[i], got[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	in := Normalize(model.ContactInput{
		Name:    "  Alice  ",
		Email:   " Alice@Example.COM ",
		Subject: " Hi there ",
		Message: "  A message body here.  ",
	})
	if in.Name != "Alice" {
		t.Errorf("name not trimmed: %q", in.Name)
	}
	if in.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", in.Email)
	}
	if in.Subject != "Hi there" {
		t.Errorf("subject not trimmed: %q", in.Subject)
	}
	if in.Message != "A message body here." {
		t.Errorf("message not trimmed: %q", in.Message)
	}
}
