package contact

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// LogSender only logs the message. Used when no mail server is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("contact form submitted",
		"id", msg.ID,
		"name", msg.Payload.Name,
		"email", msg.Payload.Email,
		"message", msg.Payload.Message,
	)
	return nil
}

// SendMailFunc performs one SMTP transaction.
type SendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// DefaultSMTPTimeout bounds a whole SMTP transaction, dial included.
const DefaultSMTPTimeout = 30 * time.Second

// SMTPSender mails each message to To through an authenticated SMTP relay.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	// Timeout defaults to DefaultSMTPTimeout.
	Timeout time.Duration
	// SendMail defaults to a context-aware transaction over net/smtp.
	SendMail SendMailFunc
}

var ErrSMTPNotConfigured = errors.New("contact: SMTP credentials not configured")

func (s SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.User == "" || s.Pass == "" || s.Host == "" || s.To == "" {
		return ErrSMTPNotConfigured
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultSMTPTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	send := s.SendMail
	if send == nil {
		send = s.sendMail
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	addr := net.JoinHostPort(s.Host, s.Port)
	if err := send(ctx, addr, auth, s.User, []string{s.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}

// sendMail is smtp.SendMail with the dial and every read and write bound to ctx.
func (s SMTPSender) sendMail(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return err
		}
	}
	// cancellation interrupts a blocked read or write
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return err
		}
	}
	if ok, _ := c.Extension("AUTH"); ok && auth != nil {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (s SMTPSender) compose(msg Message) []byte {
	p := msg.Payload
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(p.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form (%s)
`, p.Name, p.Email, p.Message, msg.ID)

	return []byte("To: " + s.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + headerSafe(p.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so visitor input cannot add mail headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
