package report

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/deckmail/pkg/deck"
	"github.com/dmitrymomot/deckmail/pkg/logger"
	"github.com/dmitrymomot/deckmail/pkg/mailer"
	"github.com/dmitrymomot/deckmail/pkg/mailer/templates"
	"github.com/dmitrymomot/deckmail/pkg/requestid"
	"github.com/dmitrymomot/deckmail/pkg/summary"
	"github.com/dmitrymomot/deckmail/pkg/table"
)

// SuccessMessage is the Result message of a delivered report.
const SuccessMessage = "PPTX generated and email sent successfully"

// DeckGenerator builds a rendered deck from report content.
type DeckGenerator interface {
	Generate(businessName string, bullets []string, rows []table.Row) (deck.Artifact, error)
}

// TokenSource issues bearer tokens for the email provider.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// invalidator is implemented by token sources that cache.
type invalidator interface {
	Invalidate()
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for ids, timestamps and the email body.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for pipeline steps.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTokenSource sets the token source. Without one the authentication step
// is skipped, which suits senders that carry their own credentials.
func WithTokenSource(ts TokenSource) Option {
	return func(s *Service) {
		s.tokens = ts
	}
}

// Service runs the report pipeline: validate, build the deck, obtain a token,
// compose the envelope, dispatch. The first failure ends the run; nothing is
// retried here and a built deck is dropped if dispatch fails.
type Service struct {
	deck   DeckGenerator
	tokens TokenSource
	sender mailer.Sender
	now    func() time.Time
	logger *slog.Logger
}

// New returns a Service.
func New(gen DeckGenerator, sender mailer.Sender, opts ...Option) *Service {
	s := &Service{
		deck:   gen,
		sender: sender,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("report"))
	return s
}

// Draft validates the content of req and returns the rendered deck without
// contacting any external service.
func (s *Service) Draft(req Request) (deck.Artifact, error) {
	if err := req.ValidateContent(); err != nil {
		return deck.Artifact{}, err
	}
	id := CorrelationID(s.now(), req.Email)
	return s.build(req, id)
}

// Run executes the whole pipeline for req.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	started := s.now()
	id := CorrelationID(started, req.Email)
	ctx = requestid.WithCorrelation(ctx, id)
	log := s.logger.With(logger.Recipient(req.Email))
	if rows := table.Mismatched(req.Data); len(rows) > 0 {
		log.WarnContext(ctx, "data rows differ from the first row's columns", slog.Any("rows", rows))
	}

	art, err := s.build(req, id)
	if err != nil {
		log.ErrorContext(ctx, "deck generation failed", logger.Step("generate"), logger.Error(err))
		return Result{}, err
	}
	log.DebugContext(ctx, "deck generated", logger.Filename(art.Filename), slog.Int("size", art.Size()))

	var token string
	if s.tokens != nil {
		token, err = s.tokens.Token(ctx)
		if err != nil {
			log.ErrorContext(ctx, "token acquisition failed", logger.Step("authenticate"), logger.Error(err))
			return Result{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
		}
	}

	env, err := s.envelope(ctx, req, started, token, art)
	if err != nil {
		return Result{}, fmt.Errorf("%w: compose envelope: %w", ErrDispatch, err)
	}

	sent, err := s.sender.Send(ctx, env)
	if err != nil {
		if mailer.StatusCode(err) == http.StatusUnauthorized {
			if inv, ok := s.tokens.(invalidator); ok {
				inv.Invalidate()
			}
		}
		log.ErrorContext(ctx, "email dispatch failed",
			logger.Step("dispatch"),
			logger.StatusCode(mailer.StatusCode(err)),
			logger.Error(err),
		)
		return Result{}, fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	log.InfoContext(ctx, "report sent",
		logger.Filename(art.Filename),
		logger.StatusCode(sent.StatusCode),
		logger.Duration(s.now().Sub(started)),
	)

	status := sent.StatusCode
	return Result{
		Success:         true,
		Message:         SuccessMessage,
		RequestID:       id,
		Timestamp:       s.now().Format(time.RFC3339),
		Filename:        art.Filename,
		EmailStatusCode: &status,
	}, nil
}

func (s *Service) build(req Request, id string) (deck.Artifact, error) {
	art, err := s.deck.Generate(req.BusinessName, summary.Parse(req.Summary), req.Data)
	if err != nil {
		return deck.Artifact{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return art.Named(Filename(req.BusinessName, id)), nil
}

func (s *Service) envelope(ctx context.Context, req Request, started time.Time, token string, art deck.Artifact) (mailer.Envelope, error) {
	subject := req.Subject
	if subject == "" {
		subject = DefaultSubject(req.BusinessName)
	}

	body := req.Body
	if body == "" {
		var err error
		body, err = templates.Render(ctx, templates.ReportEmail(req.BusinessName, started))
		if err != nil {
			return mailer.Envelope{}, err
		}
	}

	return mailer.Envelope{
		To:          []string{req.Email},
		CC:          req.CC,
		BCC:         req.BCC,
		Subject:     subject,
		BodyHTML:    body,
		AccessToken: token,
		Attachment: &mailer.Attachment{
			Filename:    art.Filename,
			ContentType: art.MIMEType,
			Data:        art.Data,
		},
	}, nil
}

// DefaultSubject is the subject used when the request has none.
func DefaultSubject(businessName string) string {
	return businessName + " - Analysis Report"
}
