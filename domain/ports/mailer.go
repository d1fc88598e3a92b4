package ports

import "context"

// MailerPort ส่งอีเมลแบบ best-effort
// implementation: SMTP ตรง, NATS queue (worker ส่งนอก process), หรือ noop สำหรับ dev
type MailerPort interface {
	Send(ctx context.Context, to, subject, body string) error
}
