package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deckmail/internal/config"
	pkgconfig "github.com/dmitrymomot/deckmail/pkg/config"
)

func load(vars map[string]string) (config.Config, error) {
	return config.Load(pkgconfig.WithVars(vars))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(map[string]string{"EMAIL_GATEWAY_URL": "https://mail.example.com/send"})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "PPT Email Service API", cfg.App.ServiceName)
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, 60*time.Second, cfg.OAuth.Timeout)
	assert.True(t, cfg.OAuth.CacheTokens)
	assert.Equal(t, "ITAAP", cfg.Gateway.PlatformName)
	assert.Equal(t, "email-attachments/", cfg.Gateway.AttachmentPath)
	assert.Equal(t, 2, cfg.Gateway.MaxRetries)
	assert.Equal(t, config.SenderGateway, cfg.Mail.Sender)
	assert.True(t, cfg.Deck.Styling)
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := load(map[string]string{
		"EMAIL_SENDER":          "postmark",
		"POSTMARK_SERVER_TOKEN": "pm-token",
		"POSTMARK_SENDER_EMAIL": "reports@example.com",
		"OAUTH_CACHE_TOKENS":    "false",
		"DECK_STYLING":          "false",
		"HTTP_ADDR":             ":9000",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-token", cfg.Postmark.ServerToken)
	assert.False(t, cfg.OAuth.CacheTokens)
	assert.False(t, cfg.Deck.Styling)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "gateway without url", vars: map[string]string{}},
		{name: "postmark without token", vars: map[string]string{"EMAIL_SENDER": "postmark"}},
		{name: "unknown sender", vars: map[string]string{"EMAIL_SENDER": "pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := load(tt.vars)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := load(map[string]string{"EMAIL_SENDER": "dev", "OAUTH_TIMEOUT": "later"})
	assert.ErrorIs(t, err, pkgconfig.ErrParsingConfig)
}
