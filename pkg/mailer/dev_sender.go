package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes envelopes to a directory instead of sending them.
// Each message produces an .html body, a .json metadata file and, when
// present, the attachment under its own name.
type DevSender struct {
	dir string
	now func() time.Time
}

var _ Sender = (*DevSender)(nil)

// NewDevSender creates a sender that saves messages under dir.
// The directory is created on first use.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp  string   `json:"timestamp"`
	To         []string `json:"to"`
	CC         []string `json:"cc,omitempty"`
	BCC        []string `json:"bcc,omitempty"`
	Subject    string   `json:"subject"`
	Attachment string   `json:"attachment,omitempty"`
	MIMEType   string   `json:"mime_type,omitempty"`
	Size       int      `json:"size,omitempty"`
}

// Send implements Sender. The message id is the shared file prefix.
func (d *DevSender) Send(ctx context.Context, env Envelope) (Result, error) {
	if err := env.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: create directory: %w", ErrDispatch, err)
	}

	now := d.now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(env.Subject))

	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(env.BodyHTML), 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: write body: %w", ErrDispatch, err)
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        env.To,
		CC:        env.CC,
		BCC:       env.BCC,
		Subject:   env.Subject,
	}
	if a := env.Attachment; a != nil {
		name := base + "_" + filepath.Base(a.Filename)
		if err := os.WriteFile(filepath.Join(d.dir, name), a.Data, 0o644); err != nil {
			return Result{}, fmt.Errorf("%w: write attachment: %w", ErrDispatch, err)
		}
		meta.Attachment = name
		meta.MIMEType = a.contentType()
		meta.Size = len(a.Data)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("%w: marshal metadata: %w", ErrDispatch, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: write metadata: %w", ErrDispatch, err)
	}

	return Result{StatusCode: http.StatusOK, MessageID: base}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename lowercases s, turns spaces into underscores and drops
// anything else that is not safe in a file name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
