package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/deckmail/pkg/binder"
	"github.com/dmitrymomot/deckmail/pkg/logger"
	"github.com/dmitrymomot/deckmail/pkg/validator"
)

// ErrorInfo is the client-facing view of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Details    map[string][]string
}

// Classifier maps domain errors to an ErrorInfo. It reports false for errors
// it does not recognise.
type Classifier func(err error) (ErrorInfo, bool)

const internalMessage = "Internal server error"

// Classify resolves err through the classifiers, then the built-in rules.
// Anything unrecognised becomes a 500 with a generic message.
func Classify(err error, classifiers ...Classifier) ErrorInfo {
	for _, c := range classifiers {
		if info, ok := c(err); ok {
			return info
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return ErrorInfo{StatusCode: httpErr.Code, Message: httpErr.Message}
	}
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "Validation failed",
			Details:    ve.Map(),
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrorInfo{StatusCode: http.StatusUnsupportedMediaType, Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrorInfo{StatusCode: http.StatusRequestEntityTooLarge, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return ErrorInfo{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}

	return ErrorInfo{StatusCode: http.StatusInternalServerError, Message: internalMessage}
}

// NewErrorHandler returns an ErrorHandler that classifies err, logs it at warn
// for 4xx and error for 5xx, and writes an ErrorBody.
func NewErrorHandler(log *slog.Logger, classifiers ...Classifier) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("http"))

	return func(ctx Context, err error) {
		info := Classify(err, classifiers...)
		r := ctx.Request()

		level := slog.LevelError
		if info.StatusCode < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.RequestID(ctx.RequestID()),
			logger.StatusCode(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)

		body := ErrorBody{
			Success:   false,
			Message:   info.Message,
			RequestID: ctx.RequestID(),
			Errors:    info.Details,
		}
		if renderErr := JSON(body, WithStatus(info.StatusCode)).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response", logger.Error(renderErr))
		}
	}
}
