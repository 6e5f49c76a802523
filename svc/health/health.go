// Package health serves the liveness endpoint.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deckmail/handler"
)

// Status is the body of GET /health.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Info names the running service.
type Info struct {
	Service string
	Version string
}

// Handle returns a router serving GET /health. now may be nil.
func Handle(info Info, now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}
	r := chi.NewRouter()
	r.Get("/health", handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.JSON(Status{
			Status:    "healthy",
			Service:   info.Service,
			Version:   info.Version,
			Timestamp: now().Format(time.RFC3339),
		})
	}))
	return r
}
