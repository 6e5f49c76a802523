package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/deckmail/handler"
	"github.com/dmitrymomot/deckmail/pkg/mailer"
	"github.com/dmitrymomot/deckmail/pkg/oauth"
	"github.com/dmitrymomot/deckmail/pkg/validator"
)

// ClassifyError maps pipeline failures to HTTP answers. It is a handler.Classifier.
//
// Authentication failures answer 401 whatever the identity endpoint said.
// Dispatch failures echo the gateway's status and body; when no answer
// arrived the status is 502. Upstream details beyond that are not exposed.
func ClassifyError(err error) (handler.ErrorInfo, bool) {
	switch {
	case errors.Is(err, ErrValidation):
		info := handler.ErrorInfo{StatusCode: http.StatusUnprocessableEntity, Message: "Validation failed"}
		if ve := validator.ExtractValidationErrors(err); ve != nil {
			info.Details = ve.Map()
		}
		return info, true

	case errors.Is(err, ErrGeneration):
		return handler.ErrorInfo{StatusCode: http.StatusInternalServerError, Message: "PPTX generation failed"}, true

	case errors.Is(err, ErrAuthentication):
		msg := "Authentication failed"
		if code := oauth.StatusCode(err); code > 0 {
			msg = fmt.Sprintf("Authentication failed: identity endpoint responded %d", code)
		}
		return handler.ErrorInfo{StatusCode: http.StatusUnauthorized, Message: msg}, true

	case errors.Is(err, ErrDispatch):
		var se *mailer.StatusError
		if errors.As(err, &se) {
			return handler.ErrorInfo{StatusCode: se.StatusCode, Message: "Email service error: " + se.Body}, true
		}
		return handler.ErrorInfo{StatusCode: http.StatusBadGateway, Message: "Email service unreachable"}, true
	}
	return handler.ErrorInfo{}, false
}
