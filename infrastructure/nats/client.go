package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"shopcore/pkg/logger"
)

const (
	// StreamName ชื่อ stream สำหรับ outbound mail
	StreamName = "MAIL"

	// SubjectMailSend subject สำหรับ mail jobs
	SubjectMailSend = "mail.send"
)

// Client wraps NATS connection with JetStream context
type Client struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL string // nats://localhost:4222
}

// NewClient สร้าง NATS Client พร้อม JetStream
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		conn: nc,
		js:   js,
	}

	if err := client.setupStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to setup stream: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL, "stream", StreamName)
	return client, nil
}

// setupStream สร้างหรืออัปเดต mail stream
func (c *Client) setupStream(ctx context.Context) error {
	mailCfg := jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{SubjectMailSend},
		Storage:     jetstream.FileStorage,     // Persistent storage
		Retention:   jetstream.WorkQueuePolicy, // ลบ message หลัง Ack
		MaxAge:      24 * time.Hour,            // เก็บ message ไม่เกิน 24 ชม.
		Replicas:    1,
		Description: "Outbound mail queue",
	}

	stream, err := c.js.CreateOrUpdateStream(ctx, mailCfg)
	if err != nil {
		return fmt.Errorf("failed to create/update mail stream: %w", err)
	}
	c.stream = stream
	logger.Info("JetStream stream ready", "name", StreamName)

	return nil
}

// JetStream exposes the JetStream context for publishers
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// Close ปิด connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
