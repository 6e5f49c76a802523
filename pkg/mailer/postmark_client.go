package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/deckmail/pkg/validator"
)

// PostmarkClient sends envelopes through Postmark's transactional API.
type PostmarkClient struct {
	client *postmark.Client
	config PostmarkConfig
}

var _ Sender = (*PostmarkClient)(nil)

// PostmarkOption configures a PostmarkClient.
type PostmarkOption func(*postmark.Client)

// WithPostmarkBaseURL points the client at a different API host.
func WithPostmarkBaseURL(u string) PostmarkOption {
	return func(c *postmark.Client) { c.BaseURL = strings.TrimRight(u, "/") }
}

// WithPostmarkHTTPClient replaces the HTTP client used by Postmark.
func WithPostmarkHTTPClient(hc *http.Client) PostmarkOption {
	return func(c *postmark.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// NewPostmarkClient creates a Postmark-backed sender.
// Both tokens and a valid sender address are required.
func NewPostmarkClient(cfg PostmarkConfig, opts ...PostmarkOption) (*PostmarkClient, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	if err := validator.Apply(validator.ValidEmail("sender_email", cfg.SenderEmail)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.ReplyTo != "" {
		if err := validator.Apply(validator.ValidEmail("reply_to", cfg.ReplyTo)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	c := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	for _, opt := range opts {
		opt(c)
	}

	return &PostmarkClient{client: c, config: cfg}, nil
}

// Send implements Sender. The attachment is base64-encoded into the message.
func (c *PostmarkClient) Send(ctx context.Context, env Envelope) (Result, error) {
	if err := env.Validate(); err != nil {
		return Result{}, err
	}

	msg := postmark.Email{
		From:       c.config.SenderEmail,
		ReplyTo:    c.config.ReplyTo,
		To:         strings.Join(env.To, ","),
		Cc:         strings.Join(env.CC, ","),
		Bcc:        strings.Join(env.BCC, ","),
		Subject:    env.Subject,
		Tag:        c.config.Tag,
		HTMLBody:   env.BodyHTML,
		TrackOpens: true,
	}
	if a := env.Attachment; a != nil {
		msg.Attachments = []postmark.Attachment{{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Data),
			ContentType: a.contentType(),
		}}
	}

	resp, err := c.client.SendEmail(ctx, msg)
	if err != nil {
		return Result{}, errors.Join(ErrDispatch, err)
	}
	if resp.ErrorCode > 0 {
		return Result{}, errors.Join(ErrDispatch, &StatusError{
			StatusCode: http.StatusUnprocessableEntity,
			Body:       fmt.Sprintf("postmark error %d: %s", resp.ErrorCode, resp.Message),
		})
	}

	return Result{StatusCode: http.StatusOK, MessageID: resp.MessageID}, nil
}
