package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aevia-legacy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, zerolog.Nop())

	l := &domain.Legacy{ID: uuid.New(), ChainID: domain.ChainEthereumMainnet}
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	event := domain.NewLegacyEvent(domain.EventLegacyExecuted, l, now)
	event.TxHash = "0xabc"

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, l.ID.String(), string(msg.Key))
	assert.Equal(t, now, msg.Time)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "legacy.executed", string(msg.Headers[0].Value))

	var decoded domain.LegacyEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "0xabc", decoded.TxHash)
}

func TestKafkaPublisher_PublishSurvivesCanceledCaller(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event := domain.NewLegacyEvent(domain.EventLegacyCreated, &domain.Legacy{ID: uuid.New()}, time.Now())
	require.NoError(t, p.Publish(ctx, event))
	assert.Len(t, w.msgs, 1)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, zerolog.Nop())

	event := domain.NewLegacyEvent(domain.EventLegacyCreated, &domain.Legacy{ID: uuid.New()}, time.Now())
	err := p.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legacy.created")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
