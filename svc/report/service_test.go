package report_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deckmail/pkg/deck"
	"github.com/dmitrymomot/deckmail/pkg/mailer"
	"github.com/dmitrymomot/deckmail/pkg/oauth"
	"github.com/dmitrymomot/deckmail/pkg/requestid"
	"github.com/dmitrymomot/deckmail/pkg/table"
	"github.com/dmitrymomot/deckmail/svc/report"
)

var slidePart = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)

func countSlides(t *testing.T, data []byte) int {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	n := 0
	for _, f := range zr.File {
		if slidePart.MatchString(f.Name) {
			n++
		}
	}
	return n
}

func newService(tokens report.TokenSource, sender mailer.Sender) *report.Service {
	opts := []report.Option{report.WithClock(func() time.Time { return fixedNow })}
	if tokens != nil {
		opts = append(opts, report.WithTokenSource(tokens))
	}
	return report.New(deck.NewBuilder(), sender, opts...)
}

func TestService_Run_Delivers(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	tokens.On("Token", mock.Anything).Return("tok-1", nil).Once()

	var sent mailer.Envelope
	var correlation string
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			correlation = requestid.CorrelationFromContext(args.Get(0).(context.Context))
			sent = args.Get(1).(mailer.Envelope)
		}).
		Return(mailer.Result{StatusCode: http.StatusAccepted}, nil).Once()

	res, err := newService(tokens, sender).Run(context.Background(), acmeRequest())
	require.NoError(t, err)

	id := report.CorrelationID(fixedNow, "a@b.com")
	assert.True(t, res.Success)
	assert.Equal(t, report.SuccessMessage, res.Message)
	assert.Equal(t, id, res.RequestID)
	assert.Equal(t, "2025-01-01T12:00:00Z", res.Timestamp)
	assert.Equal(t, "Acme_"+id+".pptx", res.Filename)
	require.NotNil(t, res.EmailStatusCode)
	assert.Equal(t, http.StatusAccepted, *res.EmailStatusCode)
	assert.Equal(t, id, correlation)

	assert.Equal(t, []string{"a@b.com"}, sent.To)
	assert.Equal(t, "Acme - Analysis Report", sent.Subject)
	assert.Contains(t, sent.BodyHTML, "<h2>Report: Acme</h2>")
	assert.Contains(t, sent.BodyHTML, "2025-01-01 12:00:00")
	assert.Equal(t, "tok-1", sent.AccessToken)
	require.NotNil(t, sent.Attachment)
	assert.Equal(t, res.Filename, sent.Attachment.Filename)
	assert.Equal(t, deck.MIMEType, sent.Attachment.ContentType)
	assert.Equal(t, 4, countSlides(t, sent.Attachment.Data))

	tokens.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestService_Run_CallerSubjectAndBody(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(env mailer.Envelope) bool {
		return env.Subject == "Q4" && env.BodyHTML == "<p>hi</p>" && env.AccessToken == "" &&
			countSlides(t, env.Attachment.Data) == 3
	})).Return(mailer.Result{StatusCode: http.StatusOK}, nil).Once()

	req := acmeRequest()
	req.Subject, req.Body, req.Data = "Q4", "<p>hi</p>", nil

	_, err := newService(nil, sender).Run(context.Background(), req)
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestService_Run_AuthenticationFailure(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	tokens.On("Token", mock.Anything).
		Return("", fmt.Errorf("%w: 401 invalid_client", oauth.ErrAuthentication)).Once()
	sender := &MockSender{}

	res, err := newService(tokens, sender).Run(context.Background(), acmeRequest())
	require.ErrorIs(t, err, report.ErrAuthentication)
	assert.ErrorIs(t, err, oauth.ErrAuthentication)
	assert.Zero(t, res)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Run_DispatchFailure(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	tokens.On("Token", mock.Anything).Return("tok", nil)
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Return(mailer.Result{StatusCode: 500}, fmt.Errorf("%w: %w", mailer.ErrDispatch,
			&mailer.StatusError{StatusCode: 500, Body: "quota exceeded"})).Once()

	_, err := newService(tokens, sender).Run(context.Background(), acmeRequest())
	require.ErrorIs(t, err, report.ErrDispatch)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 500, mailer.StatusCode(err))
	sender.AssertNumberOfCalls(t, "Send", 1)
	tokens.AssertNotCalled(t, "Invalidate")
}

func TestService_Run_RejectedTokenIsInvalidated(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	tokens.On("Token", mock.Anything).Return("stale", nil)
	tokens.On("Invalidate").Once()
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Return(mailer.Result{StatusCode: 401}, fmt.Errorf("%w: %w", mailer.ErrDispatch,
			&mailer.StatusError{StatusCode: 401, Body: "expired"}))

	_, err := newService(tokens, sender).Run(context.Background(), acmeRequest())
	require.ErrorIs(t, err, report.ErrDispatch)
	tokens.AssertExpectations(t)
}

func TestService_Run_ValidationHasNoSideEffects(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	sender := &MockSender{}
	req := acmeRequest()
	req.Email = "not-an-email"

	_, err := newService(tokens, sender).Run(context.Background(), req)
	require.ErrorIs(t, err, report.ErrValidation)
	tokens.AssertNotCalled(t, "Token", mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

type failingDeck struct{}

func (failingDeck) Generate(string, []string, []table.Row) (deck.Artifact, error) {
	return deck.Artifact{}, fmt.Errorf("%w: writer broke", deck.ErrGeneration)
}

func TestService_Run_GenerationFailure(t *testing.T) {
	t.Parallel()

	tokens := &MockTokenSource{}
	sender := &MockSender{}
	svc := report.New(failingDeck{}, sender, report.WithTokenSource(tokens))

	_, err := svc.Run(context.Background(), acmeRequest())
	require.ErrorIs(t, err, report.ErrGeneration)
	assert.True(t, errors.Is(err, deck.ErrGeneration))
	tokens.AssertNotCalled(t, "Token", mock.Anything)
}

func TestService_Draft(t *testing.T) {
	t.Parallel()

	req := acmeRequest()
	req.Email = ""
	art, err := newService(nil, &MockSender{}).Draft(req)
	require.NoError(t, err)
	assert.Equal(t, 4, countSlides(t, art.Data))
	assert.Regexp(t, `^Acme_20250101120000-\d+\.pptx$`, art.Filename)

	req.BusinessName = ""
	_, err = newService(nil, &MockSender{}).Draft(req)
	assert.ErrorIs(t, err, report.ErrValidation)
}
