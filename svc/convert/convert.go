// Package convert zips a header row with value rows into keyed records, the
// same shape the report API accepts as its data field.
package convert

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deckmail/handler"
	"github.com/dmitrymomot/deckmail/pkg/binder"
	"github.com/dmitrymomot/deckmail/pkg/table"
)

// ErrMissingInput is returned when header or data is absent or empty.
var ErrMissingInput = errors.New("convert: header and data are required")

// MissingInputMessage is the error text POST /convert answers with.
const MissingInputMessage = "Both 'header' and 'data' are required."

// WelcomeMessage is returned by GET /.
const WelcomeMessage = "Welcome to Array Converter API!"

// Request is the body of POST /convert.
type Request struct {
	Header []string `json:"header"`
	Data   [][]any  `json:"data"`
}

// Rows pairs each data row with the header by position. Short rows yield
// fewer keys and surplus values are dropped.
func Rows(req Request) ([]table.Row, error) {
	if len(req.Header) == 0 || len(req.Data) == 0 {
		return nil, ErrMissingInput
	}
	rows := make([]table.Row, 0, len(req.Data))
	for _, values := range req.Data {
		rows = append(rows, table.Zip(req.Header, values))
	}
	return rows, nil
}

// Handle returns the converter routes:
//
//	GET  /         welcome message
//	POST /convert  header + data to records
func Handle(errs handler.ErrorHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(welcome, handler.WithErrorHandler[struct{}](errs)))
	r.Post("/convert", handler.Wrap(convert,
		handler.WithBinder[Request](binder.JSON()),
		handler.WithErrorHandler[Request](errs),
	))
	return r
}

func welcome(handler.Context, struct{}) handler.Response {
	return handler.JSON(map[string]string{"message": WelcomeMessage})
}

func convert(_ handler.Context, req Request) handler.Response {
	rows, err := Rows(req)
	if err != nil {
		return handler.JSON(map[string]string{"error": MissingInputMessage}, handler.WithStatus(http.StatusBadRequest))
	}
	return handler.JSON(rows)
}
