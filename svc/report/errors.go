package report

import "errors"

// Each pipeline step wraps its failure in exactly one of these.
var (
	// ErrValidation is returned before any side effect. The chain also holds
	// validator.ValidationErrors with per-field detail.
	ErrValidation = errors.New("report: invalid request")
	// ErrGeneration is returned when the deck cannot be built. No network call was made.
	ErrGeneration = errors.New("report: deck generation failed")
	// ErrAuthentication is returned when no access token could be obtained. Nothing was dispatched.
	ErrAuthentication = errors.New("report: authentication failed")
	// ErrDispatch is returned when the email provider rejected or never received the message.
	ErrDispatch = errors.New("report: email dispatch failed")
)
