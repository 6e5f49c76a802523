package report_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/deckmail/pkg/mailer"
)

type MockTokenSource struct {
	mock.Mock
}

func (m *MockTokenSource) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenSource) Invalidate() {
	m.Called()
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, env mailer.Envelope) (mailer.Result, error) {
	args := m.Called(ctx, env)
	return args.Get(0).(mailer.Result), args.Error(1)
}
