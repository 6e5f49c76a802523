// Package app assembles deckmail from its configuration: logger, email
// backend, report service and HTTP routes.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/deckmail/internal/config"
	"github.com/dmitrymomot/deckmail/pkg/deck"
	"github.com/dmitrymomot/deckmail/pkg/logger"
	"github.com/dmitrymomot/deckmail/pkg/mailer"
	"github.com/dmitrymomot/deckmail/pkg/oauth"
	"github.com/dmitrymomot/deckmail/pkg/requestid"
	"github.com/dmitrymomot/deckmail/svc/report"
)

// NewLogger builds the process logger. LOG_LEVEL, when set, overrides the
// environment default. Records carry request and correlation ids when the
// context has them.
func NewLogger(cfg config.App, out io.Writer) (*slog.Logger, error) {
	if out == nil {
		out = os.Stdout
	}
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor(), requestid.CorrelationExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	return logger.New(opts...), nil
}

// NewSender returns the configured email backend. The gateway is the only
// backend that needs a bearer token; for it the matching token provider is
// returned as well, otherwise the token source is nil.
func NewSender(cfg config.Config, log *slog.Logger) (mailer.Sender, report.TokenSource, error) {
	switch cfg.Mail.Sender {
	case config.SenderGateway:
		tokens, err := oauth.New(cfg.OAuth, oauth.WithLogger(log))
		if err != nil {
			return nil, nil, fmt.Errorf("token provider: %w", err)
		}
		gw, err := mailer.NewGatewayClient(cfg.Gateway, mailer.WithGatewayLogger(log))
		if err != nil {
			return nil, nil, fmt.Errorf("email gateway: %w", err)
		}
		return gw, tokens, nil

	case config.SenderPostmark:
		pm, err := mailer.NewPostmarkClient(cfg.Postmark)
		if err != nil {
			return nil, nil, fmt.Errorf("postmark: %w", err)
		}
		return pm, nil, nil

	case config.SenderDev:
		log.Warn("email delivery disabled, messages are written to disk", slog.String("dir", cfg.Mail.DevDir))
		return mailer.NewDevSender(cfg.Mail.DevDir), nil, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown EMAIL_SENDER %q", config.ErrInvalid, cfg.Mail.Sender)
}

// NewReportService wires the deck builder and the email backend into a
// report.Service.
func NewReportService(cfg config.Config, log *slog.Logger) (*report.Service, error) {
	sender, tokens, err := NewSender(cfg, log)
	if err != nil {
		return nil, err
	}
	opts := []report.Option{report.WithLogger(log)}
	if tokens != nil {
		opts = append(opts, report.WithTokenSource(tokens))
	}
	return report.New(deck.NewBuilder(deck.WithStyling(cfg.Deck.Styling)), sender, opts...), nil
}
