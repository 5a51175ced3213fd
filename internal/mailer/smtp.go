package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/gracechapel/pastor-mobile-api/internal/config"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

// SMTPMailer sends mail through a STARTTLS SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPServer,
		port: cfg.SMTPPort,
		user: cfg.SMTPUsername,
		pass: cfg.SMTPPassword,
		from: cfg.FromEmail,
	}
}

func (m *SMTPMailer) SendCredentials(ctx context.Context, to, firstName, lastName string, role models.Role, tempPassword string) error {
	return m.send(ctx, credentialsMessage(to, firstName, lastName, role, tempPassword))
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string, validity time.Duration) error {
	return m.send(ctx, otpMessage(to, code, validity))
}

func (m *SMTPMailer) send(ctx context.Context, msg message) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", m.host+":"+m.port)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return fmt.Errorf("smtp server does not support STARTTLS")
	}
	tlsConfig := &tls.Config{
		ServerName: m.host,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	if err := client.Rcpt(msg.to); err != nil {
		return fmt.Errorf("smtp RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, msg.to, msg.subject, msg.body)
	if _, err := w.Write([]byte(payload)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}
