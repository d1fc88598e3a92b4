package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopcore/domain/ports"
	natsinfra "shopcore/infrastructure/nats"
	"shopcore/pkg/logger"
)

// MailJob payload ที่ publish เข้า JetStream ให้ mail worker ภายนอกส่งจริง
type MailJob struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NATSMailer publish mail jobs เข้า JetStream แทนการส่งเอง
// worker ที่ consume stream MAIL เป็นคนส่งจริง
type NATSMailer struct {
	client *natsinfra.Client
}

func NewNATSMailer(client *natsinfra.Client) ports.MailerPort {
	return &NATSMailer{client: client}
}

func (m *NATSMailer) Send(ctx context.Context, to, subject, body string) error {
	job := MailJob{
		To:        to,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}

	ack, err := m.client.JetStream().Publish(ctx, natsinfra.SubjectMailSend, data)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to publish mail job", "to", to, "error", err)
		return fmt.Errorf("failed to publish mail job: %w", err)
	}

	logger.InfoContext(ctx, "Mail job published",
		"to", to,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}
