// Package handler turns typed functions into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request value already decoded by the
// configured binders, and returns a Response. Wrap adapts it to net/http and
// sends bind failures, render failures and Error responses through one
// ErrorHandler, so every failure is logged and answered with the same JSON
// ErrorBody:
//
//	mux.Post("/api/v1/generate-and-send", handler.Wrap(generate,
//		handler.WithBinder[report.Request](binder.JSON()),
//		handler.WithErrorHandler[report.Request](errs),
//	))
//
// Classify knows HTTPError, validator.ValidationErrors (422 with per-field
// details) and the binder sentinels (400, 413, 415). Services add their own
// mappings with Classifier values passed to NewErrorHandler. Unrecognised
// errors become a 500 whose message does not leak the cause.
package handler
