// Package binder decodes HTTP request bodies into typed values.
//
// JSON is the only binder: the report API accepts nothing else. It checks the
// media type, caps the body size (DefaultMaxJSONSize unless WithMaxSize says
// otherwise), rejects unknown fields and trailing data, and leaves string
// values untouched.
//
//	var req report.Request
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseJSON) etc.
//	}
//
// All failures wrap one of the exported sentinel errors so callers can map
// them to HTTP statuses with errors.Is.
package binder
