package nats

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-api/domain/ports"
)

func message(t *testing.T, event ports.FieldsInvalidatedEvent) *nats.Msg {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return &nats.Msg{Subject: SubjectFieldsInvalidated, Data: data}
}

func TestSubscriber_HandleMessage(t *testing.T) {
	var got []*ports.FieldsInvalidatedEvent
	s := NewSubscriber(nil, "instance-a", func(e *ports.FieldsInvalidatedEvent) {
		got = append(got, e)
	})

	s.handleMessage(message(t, ports.FieldsInvalidatedEvent{CategoryID: "c1", Origin: "instance-a"}))
	assert.Empty(t, got, "own broadcast is skipped")

	s.handleMessage(message(t, ports.FieldsInvalidatedEvent{CategoryID: "c1", Origin: "instance-b"}))
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].CategoryID)

	s.handleMessage(&nats.Msg{Subject: SubjectFieldsInvalidated, Data: []byte("{")})
	assert.Len(t, got, 1, "malformed payload is dropped")
}

func TestSubscriber_HandlerPanicIsRecovered(t *testing.T) {
	s := NewSubscriber(nil, "instance-a", func(*ports.FieldsInvalidatedEvent) {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		s.handleMessage(message(t, ports.FieldsInvalidatedEvent{Origin: "instance-b"}))
	})
}

func TestSubscriber_StopWithoutStart(t *testing.T) {
	s := NewSubscriber(nil, "instance-a", func(*ports.FieldsInvalidatedEvent) {})
	assert.NoError(t, s.Stop())
}
