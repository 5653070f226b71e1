package pubsub

import (
	"context"
	"log/slog"
	"time"

	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic, keyed by restaurant id.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: false,
	}, logger)
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishCatalogEvent writes the event with its attributes as headers
func (p *kafkaPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	data, attributes, err := encodeCatalogEvent(event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.RestaurantID),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("type", event.Type),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close flushes pending writes
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
