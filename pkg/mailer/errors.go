package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrDispatch wraps every failed delivery, whether the provider answered or not.
	ErrDispatch = errors.New("mailer: dispatch failed")
	// ErrInvalidEnvelope is returned before any network call when the envelope is incomplete.
	ErrInvalidEnvelope = errors.New("mailer: invalid envelope")
	// ErrInvalidConfig is returned by constructors given unusable settings.
	ErrInvalidConfig = errors.New("mailer: invalid config")
	// ErrMissingToken is returned when a bearer token is required but absent.
	ErrMissingToken = errors.New("mailer: missing access token")
)

// StatusError carries a non-2xx answer from the email gateway.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("email service responded %d: %s", e.StatusCode, e.Body)
}

// StatusCode returns the gateway status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
