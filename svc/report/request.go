package report

import (
	"fmt"

	"github.com/dmitrymomot/deckmail/pkg/table"
	"github.com/dmitrymomot/deckmail/pkg/validator"
)

const maxBusinessName = 200

// Request is one report to build and send.
type Request struct {
	BusinessName string      `json:"business_name" yaml:"business_name"`
	Summary      string      `json:"summary" yaml:"summary"`
	Data         []table.Row `json:"data" yaml:"data"`
	Email        string      `json:"email" yaml:"email"`
	CC           []string    `json:"cc_emails,omitempty" yaml:"cc_emails"`
	BCC          []string    `json:"bcc_emails,omitempty" yaml:"bcc_emails"`
	Subject      string      `json:"subject,omitempty" yaml:"subject"`
	Body         string      `json:"body,omitempty" yaml:"body"`
}

// Validate checks everything the pipeline needs, recipients included.
func (r Request) Validate() error {
	rules := r.contentRules()
	rules = append(rules,
		validator.Required("email", r.Email),
		validator.ValidEmail("email", r.Email),
	)
	rules = append(rules, validator.ValidEmails("cc_emails", r.CC)...)
	rules = append(rules, validator.ValidEmails("bcc_emails", r.BCC)...)
	return wrapValidation(validator.Apply(rules...))
}

// ValidateContent checks only what the deck needs.
func (r Request) ValidateContent() error {
	return wrapValidation(validator.Apply(r.contentRules()...))
}

func (r Request) contentRules() []validator.Rule {
	_, schemaErr := table.Schema(r.Data)
	return []validator.Rule{
		validator.Required("business_name", r.BusinessName),
		validator.MaxLen("business_name", r.BusinessName, maxBusinessName),
		validator.Check("data", schemaErr == nil, "first row must define at least one column"),
	}
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Result is the caller-facing outcome of a pipeline run.
type Result struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RequestID       string `json:"request_id"`
	Timestamp       string `json:"timestamp"`
	Filename        string `json:"pptx_filename"`
	EmailStatusCode *int   `json:"email_status_code"`
}
