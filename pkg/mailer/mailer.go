package mailer

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/deckmail/pkg/validator"
)

// Sender delivers one envelope and reports the provider's answer.
type Sender interface {
	Send(ctx context.Context, env Envelope) (Result, error)
}

// Attachment is a file carried in memory.
type Attachment struct {
	Filename    string
	ContentType string // guessed from Filename when empty
	Data        []byte
}

// Envelope is a single outbound message.
type Envelope struct {
	To       []string `json:"to"`
	CC       []string `json:"cc"`
	BCC      []string `json:"bcc"`
	Subject  string   `json:"subject"`
	BodyHTML string   `json:"body"`
	// AccessToken authorises the request for senders that need a bearer token.
	AccessToken string      `json:"-"`
	Attachment  *Attachment `json:"-"`
}

// Result is what the provider returned for an accepted message.
type Result struct {
	StatusCode int
	MessageID  string
}

// Validate checks recipients and subject.
func (e Envelope) Validate() error {
	rules := []validator.Rule{
		validator.RequiredSlice("to", e.To),
		validator.Required("subject", e.Subject),
	}
	rules = append(rules, validator.ValidEmails("to", e.To)...)
	rules = append(rules, validator.ValidEmails("cc", e.CC)...)
	rules = append(rules, validator.ValidEmails("bcc", e.BCC)...)

	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return nil
}

func (a *Attachment) contentType() string {
	if a.ContentType != "" {
		return a.ContentType
	}
	return GuessMIME(a.Filename)
}
