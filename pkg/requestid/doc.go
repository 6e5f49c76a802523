// Package requestid carries two identifiers through a request's context.
//
// The request id names one inbound HTTP call. Middleware reuses a client
// supplied X-Request-ID header when it is 1-128 characters of
// [a-zA-Z0-9_-], otherwise it generates a UUIDv4, and echoes the value back in
// the response header.
//
// The correlation id names one report pipeline run. The report service stores
// it with WithCorrelation so token exchange and email dispatch logs line up
// with the deck filename returned to the caller.
//
// Both ids reach structured logs through LoggerExtractor and
// CorrelationExtractor:
//
//	log := logger.New(logger.WithContextExtractors(
//		requestid.LoggerExtractor(),
//		requestid.CorrelationExtractor(),
//	))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
