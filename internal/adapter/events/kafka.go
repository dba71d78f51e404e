package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aevia_events_published_total",
		Help: "Lifecycle events written to Kafka by type and outcome",
	},
	[]string{"type", "outcome"},
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements ports.EventPublisher. Messages are keyed by
// legacy id so all events of one legacy land on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	log     zerolog.Logger
}

// NewKafkaPublisher creates a publisher writing to cfg.Topic.
func NewKafkaPublisher(cfg config.KafkaConfig, log zerolog.Logger) *KafkaPublisher {
	logger := log.With().Str("component", "events").Logger()
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug().Msgf(msg, args...)
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error().Msgf(msg, args...)
		}),
	}
	return newKafkaPublisher(writer, logger)
}

func newKafkaPublisher(w messageWriter, log zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: 10 * time.Second, log: log}
}

// Publish writes one event. It runs on a context detached from the caller so
// a finished request does not drop the event.
func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.LegacyEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		eventsPublished.WithLabelValues(string(event.Type), "marshal_error").Inc()
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.LegacyID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		eventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("publish event %s: %w", event.Type, err)
	}

	eventsPublished.WithLabelValues(string(event.Type), "ok").Inc()
	p.log.Debug().
		Str("event_type", string(event.Type)).
		Str("legacy_id", event.LegacyID.String()).
		Msg("event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
