package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"reviewhub/internal/config"
)

const confirmationSubject = "Your confirmation code"

const confirmationBody = `Hello %s,

You requested a confirmation code to sign up for the review catalog.
Your confirmation code: %s

If you did not send this request, just ignore this message.
`

// SMTPMailer sends confirmation codes over plain SMTP with STARTTLS left to
// the server dialog. Sends are throttled so a signup burst cannot flood the
// relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func NewSMTPMailer(cfg *config.Config, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
		limiter:  rate.NewLimiter(rate.Limit(cfg.MailPerSecond), 1),
		logger:   logger,
	}
}

// SendConfirmationCode emails the plaintext code to the address. Errors
// propagate to the caller, signup is fail-fast on delivery problems.
func (m *SMTPMailer) SendConfirmationCode(ctx context.Context, email, username, code string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail throttle: %w", err)
	}

	body := fmt.Sprintf(confirmationBody, username, code)

	var message bytes.Buffer
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", email))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", confirmationSubject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{email}, message.Bytes()); err != nil {
		return fmt.Errorf("send mail to %s: %w", email, err)
	}

	m.logger.Info("confirmation code sent", zap.String("email", email))
	return nil
}
