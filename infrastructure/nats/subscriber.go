package nats

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"

	"ads-api/domain/ports"
	"ads-api/pkg/logger"
)

// InvalidationHandler callback เมื่อ instance อื่นล้าง cache
type InvalidationHandler func(event *ports.FieldsInvalidatedEvent)

// Subscriber รับ fields.invalidated จาก instance อื่น
type Subscriber struct {
	conn       *nats.Conn
	instanceID string
	handler    InvalidationHandler
	sub        *nats.Subscription
	mu         sync.Mutex
}

func NewSubscriber(conn *nats.Conn, instanceID string, handler InvalidationHandler) *Subscriber {
	return &Subscriber{
		conn:       conn,
		instanceID: instanceID,
		handler:    handler,
	}
}

// Start เริ่ม subscribe
func (s *Subscriber) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return nil
	}

	sub, err := s.conn.Subscribe(SubjectFieldsInvalidated, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("NATS subscriber started", "subject", SubjectFieldsInvalidated)
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	var event ports.FieldsInvalidatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to parse invalidation event", "error", err)
		return
	}

	// ของตัวเองล้างไปแล้วตอนส่ง
	if event.Origin != "" && event.Origin == s.instanceID {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Invalidation handler panicked", "error", r)
		}
	}()
	s.handler(&event)
}

// Stop หยุด subscriber
func (s *Subscriber) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub == nil {
		return nil
	}
	if err := s.sub.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", "error", err)
	}
	s.sub = nil

	logger.Info("NATS subscriber stopped")
	return nil
}
