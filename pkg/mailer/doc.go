// Package mailer delivers report emails with a single attachment.
//
// Sender is the delivery interface. Three implementations are provided:
//
//   - GatewayClient posts a multipart form to the corporate email gateway:
//     an "email-data" JSON part with recipients, subject and body, and an
//     "attachment" part with the file. The request carries a bearer token
//     taken from Envelope.AccessToken.
//   - PostmarkClient sends the same envelope through Postmark.
//   - DevSender writes the body, metadata and attachment to a directory.
//
// Every delivery failure wraps ErrDispatch. When the gateway answers with a
// non-2xx status the chain also holds a *StatusError with the upstream status
// and body:
//
//	res, err := sender.Send(ctx, env)
//	var se *mailer.StatusError
//	if errors.As(err, &se) {
//	    log.Error("gateway refused", "status", se.StatusCode, "body", se.Body)
//	}
//
// GuessMIME resolves attachment content types with explicit entries for
// Office formats.
//
// The templates subpackage holds the default HTML body.
package mailer
