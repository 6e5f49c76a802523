package mailer

import "time"

// GatewayConfig points GatewayClient at the corporate email service.
// The static payload fields are part of the gateway contract.
type GatewayConfig struct {
	URL            string        `env:"EMAIL_GATEWAY_URL"`
	Timeout        time.Duration `env:"EMAIL_GATEWAY_TIMEOUT" envDefault:"60s"`
	PlatformName   string        `env:"EMAIL_GATEWAY_PLATFORM" envDefault:"ITAAP"`
	ProjectName    string        `env:"EMAIL_GATEWAY_PROJECT" envDefault:"email-service"`
	Priority       string        `env:"EMAIL_GATEWAY_PRIORITY" envDefault:"1"`
	AttachmentPath string        `env:"EMAIL_GATEWAY_ATTACHMENT_PATH" envDefault:"email-attachments/"`
	// MaxRetries bounds resends of requests the gateway did not process:
	// 408, 425, 429, 502, 503, 504 and failed connections. Zero sends once.
	MaxRetries int `env:"EMAIL_GATEWAY_MAX_RETRIES" envDefault:"2"`
}

// PostmarkConfig holds Postmark credentials and sender identity.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"POSTMARK_SENDER_EMAIL"`
	ReplyTo      string `env:"POSTMARK_REPLY_TO"`
	Tag          string `env:"POSTMARK_TAG" envDefault:"analysis-report"`
}
