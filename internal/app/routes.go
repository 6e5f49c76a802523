package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/deckmail/handler"
	"github.com/dmitrymomot/deckmail/internal/config"
	"github.com/dmitrymomot/deckmail/pkg/requestid"
	"github.com/dmitrymomot/deckmail/svc/convert"
	"github.com/dmitrymomot/deckmail/svc/health"
	"github.com/dmitrymomot/deckmail/svc/report"
)

// NewRouter returns the HTTP surface of the service.
//
//	GET  /health
//	GET  /                          converter welcome
//	POST /convert
//	POST /api/v1/generate-and-send
//	GET  /api/v1/example
func NewRouter(cfg config.Config, svc *report.Service, log *slog.Logger) http.Handler {
	errs := handler.NewErrorHandler(log, report.ClassifyError)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(requestid.Middleware)
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errs(handler.NewContext(w, req), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		errs(handler.NewContext(w, req), handler.ErrMethodNotAllowed)
	})

	r.Handle("/health", health.Handle(health.Info{
		Service: cfg.App.ServiceName,
		Version: cfg.App.Version,
	}, nil))

	conv := convert.Handle(errs)
	r.Handle("/", conv)
	r.Handle("/convert", conv)

	r.Mount("/api/v1", svc.Handle())
	return r
}
