package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"shopcore/domain/ports"
	"shopcore/pkg/config"
	"shopcore/pkg/logger"
)

// SMTPMailer ส่ง email ผ่าน SMTP server โดยตรง
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg *config.MailConfig) ports.MailerPort {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.From,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.from, to, subject, body,
	))

	addr := m.host + ":" + m.port

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	// net/smtp ไม่รองรับ context โดยตรง เช็ค cancellation ก่อนส่ง
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		logger.ErrorContext(ctx, "Failed to send email", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoContext(ctx, "Email sent", "to", to, "subject", subject)
	return nil
}
