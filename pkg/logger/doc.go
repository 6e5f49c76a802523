// Package logger builds *slog.Logger values with functional options and keeps
// attribute names consistent across deckmail.
//
// New picks a JSON or text handler, applies static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so every
// *Context call pulls request-scoped values (the inbound request id, the
// report correlation id) out of the context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.App.Env, "deckmail"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "report sent",
//		logger.CorrelationID(id),
//		logger.Recipient(to),
//		logger.StatusCode(202),
//	)
//
// Attribute helpers that receive zero values (nil error, empty correlation id,
// status 0) return an empty slog.Attr, which slog drops.
package logger
