// Package notify delivers templated messages to users. The server picks an
// implementation at start-up: SMTP in production, a structured log line in
// development, and an in-memory recorder in tests.
package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"sync"
)

// Template names.
const (
	TemplateVerificationEmail    = "verification_email"
	TemplatePasswordResetRequest = "password_reset_request"
	TemplateInvitationEmail      = "invitation_email"
)

// ErrUnknownTemplate is returned when a message names a template that does not exist.
var ErrUnknownTemplate = errors.New("notify: unknown template")

// Message is a single outgoing notification.
type Message struct {
	To       string
	Subject  string
	Template string
	Context  map[string]any
}

// Notifier sends messages. Implementations must be safe for concurrent use.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

//go:embed templates/*.html
var templateFS embed.FS

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.New("notify").Option("missingkey=zero").ParseFS(templateFS, "templates/*.html")
	})
	return parsed, parseErr
}

// Render executes the message template and returns the HTML body.
func Render(msg Message) (string, error) {
	tmpl, err := templates()
	if err != nil {
		return "", fmt.Errorf("notify: parse templates: %w", err)
	}

	t := tmpl.Lookup(msg.Template + ".html")
	if t == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, msg.Template)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, msg.Context); err != nil {
		return "", fmt.Errorf("notify: render %s: %w", msg.Template, err)
	}
	return buf.String(), nil
}
