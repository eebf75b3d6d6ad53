package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"ads-api/domain/ports"
	"ads-api/pkg/logger"
)

// Publisher implements ports.EventPublisherPort
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

var _ ports.EventPublisherPort = (*Publisher)(nil)

// PublishAdCreated ส่งเข้า JetStream (persist)
func (p *Publisher) PublishAdCreated(ctx context.Context, event *ports.AdCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectAdCreated, data)
	if err != nil {
		return fmt.Errorf("failed to publish ad event: %w", err)
	}

	logger.DebugContext(ctx, "Ad event published",
		"ad_id", event.AdID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}

// PublishFieldsInvalidated core pub/sub; instance ที่ offline อยู่ไม่ต้องได้ (cache ของมันว่างตอน start)
func (p *Publisher) PublishFieldsInvalidated(ctx context.Context, event *ports.FieldsInvalidatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.conn.Publish(SubjectFieldsInvalidated, data); err != nil {
		return fmt.Errorf("failed to publish invalidation: %w", err)
	}
	return nil
}
