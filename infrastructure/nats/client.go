package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"ads-api/pkg/logger"
)

// Client wraps NATS connection with JetStream context
type Client struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream // AD_EVENTS
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL  string // nats://localhost:4222
	Name string // ชื่อ connection (เห็นใน nats monitoring)
}

// NewClient สร้าง NATS Client พร้อม JetStream
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
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

	client := &Client{conn: nc, js: js}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.setupStream(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to setup stream: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL, "stream", AdEventsStream)
	return client, nil
}

// setupStream สร้างหรืออัปเดต stream ของ ad events
func (c *Client) setupStream(ctx context.Context) error {
	stream, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        AdEventsStream,
		Subjects:    []string{"ads.>"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy, // หลาย consumer อ่านได้
		MaxAge:      7 * 24 * time.Hour,
		Replicas:    1,
		Description: "Ad lifecycle events",
	})
	if err != nil {
		return fmt.Errorf("failed to create/update ad events stream: %w", err)
	}
	c.stream = stream
	return nil
}

// Conn returns the underlying NATS connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// StreamStatus สถานะ stream สำหรับ health check
func (c *Client) StreamStatus(ctx context.Context) (*StreamStatus, error) {
	info, err := c.stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream info: %w", err)
	}
	return &StreamStatus{
		Name:     info.Config.Name,
		Messages: info.State.Msgs,
		Bytes:    info.State.Bytes,
		LastSeq:  info.State.LastSeq,
	}, nil
}

// Close ปิด NATS connection (drain เพื่อส่ง message ที่ค้างก่อน)
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
		return err
	}
	logger.Info("NATS connection closed")
	return nil
}

// IsConnected ตรวจสอบว่าเชื่อมต่ออยู่หรือไม่
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}
