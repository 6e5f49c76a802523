package oauth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/deckmail/pkg/retry"
)

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient replaces the HTTP client used for the token exchange.
// The client's own timeout is kept as is.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithLogger sets the logger for exchange attempts.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithBackoff overrides the delay between retried exchanges.
func WithBackoff(b retry.Backoff) Option {
	return func(p *Provider) {
		if b != nil {
			p.policy.Backoff = b
		}
	}
}

// WithClock overrides the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}
