package oauth

import "time"

// Config holds the client-credentials settings for the identity endpoint.
type Config struct {
	ClientID     string        `env:"OAUTH_CLIENT_ID"`
	ClientSecret string        `env:"OAUTH_CLIENT_SECRET"`
	Scope        string        `env:"OAUTH_SCOPE"`
	TokenURL     string        `env:"OAUTH_TOKEN_URL"`
	Timeout      time.Duration `env:"OAUTH_TIMEOUT" envDefault:"60s"`
	// CacheTokens keeps a token until shortly before it expires.
	// When false every call performs a fresh exchange.
	CacheTokens bool `env:"OAUTH_CACHE_TOKENS" envDefault:"true"`
	// ExpiryLeeway is subtracted from the token lifetime before it is reused.
	ExpiryLeeway time.Duration `env:"OAUTH_EXPIRY_LEEWAY" envDefault:"30s"`
	// FallbackTTL is used for tokens issued without expires_in.
	FallbackTTL time.Duration `env:"OAUTH_FALLBACK_TTL" envDefault:"5m"`
	MaxRetries  int           `env:"OAUTH_MAX_RETRIES" envDefault:"2"`
}
