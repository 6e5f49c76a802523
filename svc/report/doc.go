// Package report turns a business summary and a dataset into a slide deck and
// emails it.
//
// Service.Run is the whole pipeline. Each step fails fast and wraps its error
// in one sentinel so callers can tell them apart:
//
//	validate      ErrValidation     nothing happened yet
//	build deck    ErrGeneration     no network call made
//	get token     ErrAuthentication nothing dispatched
//	dispatch      ErrDispatch       deck discarded
//
// A run is identified by CorrelationID, which also names the attachment
// (Filename) and is returned as Result.RequestID. The id is stored in the
// context so token and gateway logs carry it.
//
// Handle exposes the pipeline over HTTP and ClassifyError maps the sentinels
// to statuses: 422, 500, 401, and the gateway's own status (502 when it never
// answered).
package report
