package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/dmitrymomot/deckmail/pkg/logger"
	"github.com/dmitrymomot/deckmail/pkg/retry"
)

const (
	metadataField    = "email-data"
	metadataFilename = "email-data.json"
	attachmentField  = "attachment"

	// maxErrorBody caps how much of a failed response is kept for diagnostics.
	maxErrorBody = 64 << 10
)

// gatewayPayload is the JSON metadata part expected by the gateway.
type gatewayPayload struct {
	To           []string `json:"to"`
	CC           []string `json:"cc"`
	BCC          []string `json:"bcc"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	PlatformName string   `json:"platformName"`
	ProjectName  string   `json:"projectName"`
	Priority     string   `json:"priority"`
	URL          string   `json:"url"`
}

// GatewayOption configures a GatewayClient.
type GatewayOption func(*GatewayClient)

// WithGatewayHTTPClient replaces the HTTP client. Its timeout is kept as is.
func WithGatewayHTTPClient(c *http.Client) GatewayOption {
	return func(g *GatewayClient) {
		if c != nil {
			g.client = c
		}
	}
}

// WithGatewayLogger sets the logger for delivery attempts.
func WithGatewayLogger(l *slog.Logger) GatewayOption {
	return func(g *GatewayClient) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithGatewayBackoff overrides the delay between resends.
func WithGatewayBackoff(b retry.Backoff) GatewayOption {
	return func(g *GatewayClient) {
		if b != nil {
			g.policy.Backoff = b
		}
	}
}

// GatewayClient posts envelopes to the corporate email gateway as a
// multipart form with a JSON metadata part and one attachment part.
type GatewayClient struct {
	cfg    GatewayConfig
	client *http.Client
	policy retry.Policy
	logger *slog.Logger
}

var _ Sender = (*GatewayClient)(nil)

// NewGatewayClient returns a client for cfg.URL.
func NewGatewayClient(cfg GatewayConfig, opts ...GatewayOption) (*GatewayClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("%w: gateway url is required", ErrInvalidConfig)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	g := &GatewayClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		policy: retry.Policy{
			MaxRetries: max(cfg.MaxRetries, 0),
			Backoff:    retry.DefaultBackoff(),
			Classify:   unprocessed,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("gateway"))

	return g, nil
}

// Send delivers env with its attachment. A non-2xx answer is returned as a
// *StatusError wrapped in ErrDispatch; transport failures wrap ErrDispatch too.
func (g *GatewayClient) Send(ctx context.Context, env Envelope) (Result, error) {
	if err := env.Validate(); err != nil {
		return Result{}, err
	}
	if env.AccessToken == "" {
		return Result{}, ErrMissingToken
	}

	body, contentType, err := g.encode(env)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode request: %w", ErrDispatch, err)
	}

	policy := g.policy
	policy.OnAttempt = func(a retry.Attempt) {
		attrs := []any{
			logger.Attempt(a.Number),
			logger.StatusCode(a.StatusCode),
			logger.Duration(a.Duration),
		}
		if a.Err != nil {
			g.logger.WarnContext(ctx, "email dispatch failed", append(attrs, logger.Error(a.Err))...)
			return
		}
		g.logger.InfoContext(ctx, "email dispatched", attrs...)
	}

	var res Result
	err = retry.Do(ctx, policy, func(ctx context.Context) (int, error) {
		var err error
		res, err = g.post(ctx, env.AccessToken, contentType, body)
		return res.StatusCode, err
	})
	return res, err
}

func (g *GatewayClient) post(ctx context.Context, token, contentType string, body []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: build request: %w", ErrDispatch, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDispatch, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	res := Result{StatusCode: resp.StatusCode, MessageID: resp.Header.Get("X-Message-Id")}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, fmt.Errorf("%w: %w", ErrDispatch, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		})
	}
	return res, nil
}

func (g *GatewayClient) encode(env Envelope) ([]byte, string, error) {
	meta, err := json.Marshal(gatewayPayload{
		To:           nonNil(env.To),
		CC:           nonNil(env.CC),
		BCC:          nonNil(env.BCC),
		Subject:      env.Subject,
		Body:         env.BodyHTML,
		PlatformName: g.cfg.PlatformName,
		ProjectName:  g.cfg.ProjectName,
		Priority:     g.cfg.Priority,
		URL:          g.cfg.AttachmentPath,
	})
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := writePart(mw, metadataField, metadataFilename, "application/json", meta); err != nil {
		return nil, "", err
	}
	if a := env.Attachment; a != nil {
		if err := writePart(mw, attachmentField, a.Filename, a.contentType(), a.Data); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writePart(mw *multipart.Writer, field, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// unprocessed reports whether the gateway certainly did not act on the request,
// so sending it again cannot duplicate the message. A 500 or a timeout after
// the request was written may have been delivered and is never resent.
func unprocessed(status int, err error) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	case 0:
		var op *net.OpError
		return errors.As(err, &op) && op.Op == "dial"
	default:
		return false
	}
}
