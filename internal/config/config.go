// Package config is the deckmail runtime configuration, loaded once at start
// and passed down by value.
package config

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/deckmail/pkg/config"
	"github.com/dmitrymomot/deckmail/pkg/httpserver"
	"github.com/dmitrymomot/deckmail/pkg/mailer"
	"github.com/dmitrymomot/deckmail/pkg/oauth"
)

// Sender backends selectable with EMAIL_SENDER.
const (
	SenderGateway  = "gateway"
	SenderPostmark = "postmark"
	SenderDev      = "dev"
)

// ErrInvalid is returned for settings that parse but cannot work together.
var ErrInvalid = errors.New("config: invalid settings")

type Config struct {
	App      App
	HTTP     httpserver.Config
	OAuth    oauth.Config
	Gateway  mailer.GatewayConfig
	Postmark mailer.PostmarkConfig
	Mail     Mail
	Deck     Deck
}

type App struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"APP_SERVICE_NAME" envDefault:"PPT Email Service API"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

type Mail struct {
	// Sender picks the delivery backend: gateway, postmark or dev.
	Sender string `env:"EMAIL_SENDER" envDefault:"gateway"`
	// DevDir is where the dev sender writes messages.
	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

type Deck struct {
	// Styling turns colours, bold runs and zebra striping on.
	Styling bool `env:"DECK_STYLING" envDefault:"true"`
}

// Load reads the optional .env file and the environment, then checks that the
// selected sender has what it needs. Credentials are checked later by the
// constructors that use them.
func Load(opts ...config.Option) (Config, error) {
	opts = append([]config.Option{config.WithOptionalEnvFile()}, opts...)
	cfg, err := config.Load[Config](opts...)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports inconsistent settings.
func (c Config) Validate() error {
	switch c.Mail.Sender {
	case SenderGateway:
		if c.Gateway.URL == "" {
			return fmt.Errorf("%w: EMAIL_GATEWAY_URL is required for the gateway sender", ErrInvalid)
		}
	case SenderPostmark:
		if c.Postmark.ServerToken == "" || c.Postmark.SenderEmail == "" {
			return fmt.Errorf("%w: POSTMARK_SERVER_TOKEN and POSTMARK_SENDER_EMAIL are required for the postmark sender", ErrInvalid)
		}
	case SenderDev:
		if c.Mail.DevDir == "" {
			return fmt.Errorf("%w: EMAIL_DEV_DIR is required for the dev sender", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown EMAIL_SENDER %q", ErrInvalid, c.Mail.Sender)
	}
	return nil
}
