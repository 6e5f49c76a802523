package report

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deckmail/handler"
	"github.com/dmitrymomot/deckmail/pkg/binder"
)

// Handle returns the report routes, meant to be mounted under /api/v1:
//
//	POST /generate-and-send  run the pipeline
//	GET  /example            sample request and response
func (s *Service) Handle() http.Handler {
	errs := handler.NewErrorHandler(s.logger, ClassifyError)

	r := chi.NewRouter()
	r.Post("/generate-and-send", handler.Wrap(s.generate,
		handler.WithBinder[Request](binder.JSON(binder.WithMaxSize(MaxRequestSize))),
		handler.WithErrorHandler[Request](errs),
	))
	r.Get("/example", handler.Wrap(s.example,
		handler.WithErrorHandler[struct{}](errs),
	))
	return r
}

// MaxRequestSize bounds a report request body.
const MaxRequestSize = 4 << 20

func (s *Service) generate(ctx handler.Context, req Request) handler.Response {
	res, err := s.Run(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	s.logger.DebugContext(ctx, "report request served", slog.String("correlation_id", res.RequestID))
	return handler.JSON(res)
}

func (s *Service) example(handler.Context, struct{}) handler.Response {
	return handler.JSON(NewExample(s.now()))
}
