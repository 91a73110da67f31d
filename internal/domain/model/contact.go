package model

import (
	"errors"
	"regexp"
)

// Validation errors returned by ContactSubmission.Validate.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// emailPattern accepts the local@domain.tld shape and nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is one contact form post. It is never persisted: it
// exists for the duration of a single request.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Validate checks required fields first, then the email shape.
func (s ContactSubmission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ForwardPayload is the body sent to the forwarding destination. Phone and
// Service are always present, as empty strings when the visitor left them out.
type ForwardPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Payload builds the forwarded body.
func (s ContactSubmission) Payload() ForwardPayload {
	return ForwardPayload{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Service: s.Service,
		Message: s.Message,
	}
}

// ForwardResult is the destination's answer. Message is whatever detail the
// destination supplied and is for logs only.
type ForwardResult struct {
	Success bool
	Message string
}
