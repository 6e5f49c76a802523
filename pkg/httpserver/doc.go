// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run opens the listener first, so a busy port is reported as ErrStart
// before any request is accepted, then serves until the context is cancelled,
// SIGINT/SIGTERM arrives or Shutdown is called. In-flight requests get the
// shutdown timeout to finish.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config carries env tags (HTTP_ADDR, HTTP_READ_TIMEOUT, ...) so it can be
// embedded in the application configuration and loaded with caarlos0/env.
// The default write timeout is long because one report request includes a
// token exchange and an email dispatch, each with its own retries.
package httpserver
