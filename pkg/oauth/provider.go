package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/deckmail/pkg/logger"
	"github.com/dmitrymomot/deckmail/pkg/retry"
)

// TokenSource issues bearer tokens for outbound calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

const refreshKey = "token"

type entry struct {
	token  string
	expiry time.Time
}

// Provider obtains access tokens with the client-credentials grant.
// It is safe for concurrent use.
type Provider struct {
	conf        clientcredentials.Config
	client      *http.Client
	cache       bool
	leeway      time.Duration
	fallbackTTL time.Duration
	policy      retry.Policy
	now         func() time.Time
	logger      *slog.Logger

	mu     sync.RWMutex
	cached entry
	group  singleflight.Group
}

var _ TokenSource = (*Provider)(nil)

// New validates cfg and returns a Provider. No network call is made.
func New(cfg Config, opts ...Option) (*Provider, error) {
	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, ErrMissingSecret
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, ErrMissingClientID
	}
	if strings.TrimSpace(cfg.TokenURL) == "" {
		return nil, ErrMissingTokenURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var scopes []string
	if s := strings.TrimSpace(cfg.Scope); s != "" {
		scopes = strings.Fields(s)
	}

	p := &Provider{
		conf: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		client:      &http.Client{Timeout: timeout},
		cache:       cfg.CacheTokens,
		leeway:      cfg.ExpiryLeeway,
		fallbackTTL: cfg.FallbackTTL,
		policy: retry.Policy{
			MaxRetries: max(cfg.MaxRetries, 0),
			Backoff:    retry.DefaultBackoff(),
		},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("oauth"))

	return p, nil
}

// Token returns a valid access token, reusing the cached one when allowed.
// Concurrent callers share a single in-flight exchange.
func (p *Provider) Token(ctx context.Context) (string, error) {
	if !p.cache {
		e, err := p.exchange(ctx)
		if err != nil {
			return "", err
		}
		return e.token, nil
	}

	if tok, ok := p.lookup(); ok {
		return tok, nil
	}

	// The shared exchange must not die with whichever caller started it;
	// the HTTP client timeout still bounds it.
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(refreshKey, func() (any, error) {
		if tok, ok := p.lookup(); ok {
			return tok, nil
		}
		e, err := p.exchange(shared)
		if err != nil {
			return "", err
		}
		p.store(e)
		return e.token, nil
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrAuthentication, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached token so the next Token call performs an exchange.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.cached = entry{}
	p.mu.Unlock()
}

func (p *Provider) lookup() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cached.token == "" || !p.now().Before(p.cached.expiry) {
		return "", false
	}
	return p.cached.token, true
}

func (p *Provider) store(e entry) {
	p.mu.Lock()
	p.cached = e
	p.mu.Unlock()
}

func (p *Provider) exchange(ctx context.Context) (entry, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	policy := p.policy
	policy.OnAttempt = func(a retry.Attempt) {
		if a.Err == nil {
			return
		}
		p.logger.WarnContext(ctx, "token exchange failed",
			logger.Attempt(a.Number),
			logger.StatusCode(a.StatusCode),
			logger.Duration(a.Duration),
			logger.Error(a.Err),
		)
	}

	var tok *oauth2.Token
	err := retry.Do(ctx, policy, func(ctx context.Context) (int, error) {
		t, err := p.conf.Token(ctx)
		if err != nil {
			return statusOf(err), err
		}
		tok = t
		return http.StatusOK, nil
	})
	if err != nil {
		return entry{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if tok.AccessToken == "" {
		return entry{}, fmt.Errorf("%w: response has no access_token", ErrAuthentication)
	}

	return entry{token: tok.AccessToken, expiry: p.expiry(tok)}, nil
}

func (p *Provider) expiry(tok *oauth2.Token) time.Time {
	if tok.Expiry.IsZero() {
		return p.now().Add(p.fallbackTTL)
	}
	return tok.Expiry.Add(-p.leeway)
}

// statusOf classifies a failed exchange. Transport failures report 0 so they
// are retried; a response that arrived but could not be used reports 200 so
// it is not.
func statusOf(err error) int {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return re.Response.StatusCode
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return 0
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return 0
	}
	return http.StatusOK
}

// StatusCode returns the identity endpoint's HTTP status carried by err,
// or 0 when err holds none.
func StatusCode(err error) int {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return re.Response.StatusCode
	}
	return 0
}
