package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deckmail/pkg/binder"
)

type payload struct {
	Name string   `json:"name"`
	Body string   `json:"body"`
	CC   []string `json:"cc_emails"`
}

func newRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var got payload
		err := binder.JSON()(newRequest(`{"name":"Acme","cc_emails":["a@x.io"]}`, "application/json"), &got)
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "Acme", CC: []string{"a@x.io"}}, got)
	})

	t.Run("charset parameter is accepted", func(t *testing.T) {
		t.Parallel()
		var got payload
		err := binder.JSON()(newRequest(`{"name":"Acme"}`, "application/json; charset=utf-8"), &got)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
	})

	t.Run("html is kept verbatim", func(t *testing.T) {
		t.Parallel()
		var got payload
		err := binder.JSON()(newRequest(`{"body":"<h2>Report</h2><p>a &amp; b</p>"}`, "application/json"), &got)
		require.NoError(t, err)
		assert.Equal(t, "<h2>Report</h2><p>a &amp; b</p>", got.Body)
	})
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		opts        []binder.Option
		wantErr     error
	}{
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong media type", body: `{}`, contentType: "text/plain", wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed", body: `{"name":`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"nope":1}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "wrong type", body: `{"name":42}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"name":"a"}{"name":"b"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{
			name:        "too large",
			body:        `{"name":"` + strings.Repeat("x", 64) + `"}`,
			contentType: "application/json",
			opts:        []binder.Option{binder.WithMaxSize(32)},
			wantErr:     binder.ErrBodyTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got payload
			err := binder.JSON(tt.opts...)(newRequest(tt.body, tt.contentType), &got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
