package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deckmail/handler"
	"github.com/dmitrymomot/deckmail/pkg/binder"
	"github.com/dmitrymomot/deckmail/pkg/requestid"
	"github.com/dmitrymomot/deckmail/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name"`
}

var quiet = slog.New(slog.DiscardHandler)

func call(t *testing.T, h http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/greet", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorBody {
	t.Helper()
	var body handler.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func greet(ctx handler.Context, req greetRequest) handler.Response {
	if err := validator.Apply(validator.Required("name", req.Name)); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(map[string]string{"hello": req.Name, "request_id": ctx.RequestID()},
		handler.WithStatus(http.StatusCreated),
		handler.WithHeader("X-Greeting", "1"),
	)
}

func wrapGreet(opts ...handler.WrapOption[greetRequest]) http.Handler {
	opts = append([]handler.WrapOption[greetRequest]{
		handler.WithBinder[greetRequest](binder.JSON()),
		handler.WithErrorHandler[greetRequest](handler.NewErrorHandler(quiet)),
	}, opts...)
	return handler.Wrap(greet, opts...)
}

func TestWrap_Success(t *testing.T) {
	t.Parallel()

	rec := call(t, wrapGreet(), http.MethodPost, `{"name":"Acme"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1", rec.Header().Get("X-Greeting"))
	assert.JSONEq(t, `{"hello":"Acme","request_id":"req-1"}`, rec.Body.String())
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bind failure", func(t *testing.T) {
		t.Parallel()
		rec := call(t, wrapGreet(), http.MethodPost, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := errorBody(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "req-1", body.RequestID)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		rec := call(t, wrapGreet(), http.MethodPost, `{"name":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, map[string][]string{"name": {"field is required"}}, errorBody(t, rec).Errors)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil },
			handler.WithErrorHandler[struct{}](handler.NewErrorHandler(quiet)))
		rec := call(t, h, http.MethodGet, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", errorBody(t, rec).Message)
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[greetRequest] {
		return func(next handler.HandlerFunc[greetRequest]) handler.HandlerFunc[greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	rec := call(t, wrapGreet(handler.WithDecorators(trace("outer"), trace("inner"))), http.MethodPost, `{"name":"a"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	parent, cancel := context.WithCancel(context.WithValue(req.Context(), key{}, "v"))
	req = req.WithContext(parent)
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Empty(t, ctx.RequestID())

	cancel()
	<-ctx.Done()
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}
