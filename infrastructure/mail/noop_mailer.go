package mail

import (
	"context"

	"shopcore/domain/ports"
	"shopcore/pkg/logger"
)

// NoopMailer log อย่างเดียว ใช้ตอน development ที่ไม่มี SMTP/NATS
type NoopMailer struct{}

func NewNoopMailer() ports.MailerPort {
	return &NoopMailer{}
}

func (m *NoopMailer) Send(ctx context.Context, to, subject, body string) error {
	logger.InfoContext(ctx, "Mail (noop)", "to", to, "subject", subject, "body", body)
	return nil
}
