package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// BookRequest defines the payload for the book create and update endpoints.
// Any ID in the payload is ignored; identity comes from the URL path.
type BookRequest struct {
	Title         string    `json:"title"  validate:"required"`
	Author        string    `json:"author" validate:"required"`
	ISBN          string    `json:"isbn"`
	PublishedDate *DateTime `json:"publishedDate"`
}

// DateTime wraps time.Time to accept ISO-8601 datetimes both with and
// without a timezone offset (e.g. "1969-01-01T00:00:00"), as some clients
// send. It always marshals as RFC 3339 in UTC.
type DateTime struct {
	time.Time
}

// dateTimeLayouts are tried in order when parsing.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid datetime format: %q", s)
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}

// publishedDate converts the optional request field to the domain
// representation.
func (r *BookRequest) publishedDate() *time.Time {
	if r.PublishedDate == nil {
		return nil
	}
	t := r.PublishedDate.Time
	return &t
}

// validationErrorMessage turns a validator error into a client-facing
// message with per-field detail, e.g. "title is required".
func validationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation error: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return "Validation error: " + strings.Join(msgs, "; ")
}
