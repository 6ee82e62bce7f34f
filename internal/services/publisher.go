package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=services

// KafkaWriter writes messages to a Kafka topic.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// EventPublisher announces loaded days on Kafka.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer turns Publish into a no-op.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish writes event keyed by its date.
func (p *EventPublisher) Publish(ctx context.Context, event models.LoadEvent) error {
	if p.writer == nil {
		logger.Log.Debugw("kafka writer not configured, skipping load event", "date", event.Date)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal load event", "date", event.Date, "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Date),
		Value: payload,
		Time:  time.Unix(event.LoadedAt, 0),
	})
	if err != nil {
		logger.Log.Errorw("failed to publish load event", "date", event.Date, "error", err)
		return err
	}

	logger.Log.Infow("load event published", "date", event.Date, "facts", event.FactsInserted)
	return nil
}
