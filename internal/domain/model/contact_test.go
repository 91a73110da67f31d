package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    "Asha Verma",
		Email:   "asha@example.in",
		Message: "We need a launch campaign.",
	}
}

func TestContactSubmission_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactSubmission)
		want   error
	}{
		{name: "valid", mutate: func(*ContactSubmission) {}},
		{name: "valid with optional fields", mutate: func(s *ContactSubmission) { s.Phone, s.Service = "+91-8810543765", "seo" }},
		{name: "missing name", mutate: func(s *ContactSubmission) { s.Name = "" }, want: ErrMissingFields},
		{name: "missing email", mutate: func(s *ContactSubmission) { s.Email = "" }, want: ErrMissingFields},
		{name: "missing message", mutate: func(s *ContactSubmission) { s.Message = "" }, want: ErrMissingFields},
		{name: "missing beats malformed", mutate: func(s *ContactSubmission) { s.Name, s.Email = "", "foo" }, want: ErrMissingFields},
		{name: "no at sign", mutate: func(s *ContactSubmission) { s.Email = "foo" }, want: ErrInvalidEmail},
		{name: "no tld", mutate: func(s *ContactSubmission) { s.Email = "a@b" }, want: ErrInvalidEmail},
		{name: "no local part", mutate: func(s *ContactSubmission) { s.Email = "@b.com" }, want: ErrInvalidEmail},
		{name: "whitespace", mutate: func(s *ContactSubmission) { s.Email = "a b@c.com" }, want: ErrInvalidEmail},
		{name: "two at signs", mutate: func(s *ContactSubmission) { s.Email = "a@b@c.com" }, want: ErrInvalidEmail},
		{name: "subdomain", mutate: func(s *ContactSubmission) { s.Email = "team@mail.socialroute.in" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := s.Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestContactSubmission_PayloadDefaultsOptionalFields(t *testing.T) {
	p := validSubmission().Payload()

	assert.Equal(t, ForwardPayload{
		Name:    "Asha Verma",
		Email:   "asha@example.in",
		Phone:   "",
		Service: "",
		Message: "We need a launch campaign.",
	}, p)
}

func TestClient_Initials(t *testing.T) {
	assert.Equal(t, "B1", Client{Name: "Brand 1"}.Initials())
	assert.Equal(t, "SR", Client{Name: "Social Route Media"}.Initials())
	assert.Equal(t, "A", Client{Name: "  Acme"}.Initials())
	assert.Equal(t, "", Client{}.Initials())
}
