package notify

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier renders messages and delivers them over SMTP. Authentication is
// skipped when Username is empty.
type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// SendMail defaults to smtp.SendMail.
	SendMail SendMailFunc
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := Render(msg)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if n.Username != "" {
		auth = smtp.PlainAuth("", n.Username, n.Password, n.Host)
	}

	send := n.SendMail
	if send == nil {
		send = smtp.SendMail
	}

	addr := net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
	if err := send(addr, auth, n.From, []string{msg.To}, n.compose(msg, body)); err != nil {
		return fmt.Errorf("notify: smtp send to %s: %w", addr, err)
	}
	return nil
}

func (n *SMTPNotifier) compose(msg Message, body string) []byte {
	var buf bytes.Buffer
	header := func(k, v string) {
		buf.WriteString(k + ": " + v + "\r\n")
	}
	header("From", n.From)
	header("To", msg.To)
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", time.Now().UTC().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="utf-8"`)
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return buf.Bytes()
}
