package kafka

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventName   = "event-name"
	HeaderEventID     = "event-id"
	HeaderOccurredAt  = "occurred-at"
	occurredAtLayout  = time.RFC3339Nano
	defaultBatchDelay = 100 * time.Millisecond
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher writes outbox messages to a single topic. Messages are keyed by
// order ID so that every event of one order stays on one partition.
type Publisher struct {
	writer *kafka.Writer
	topic  string
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka: topic is required")
	}

	return &Publisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           defaultBatchDelay,
		},
	}, nil
}

// Publish writes all messages in one batch. Either every message is
// acknowledged or an error is returned and the caller retries the batch.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toKafkaMessage(m))
	}

	return p.writer.WriteMessages(ctx, batch...)
}

func (p *Publisher) Topic() string {
	return p.topic
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(m ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(m.PartitionKey.String()),
		Value: m.Payload,
		Headers: []kafka.Header{
			{Key: HeaderEventName, Value: []byte(m.EventName)},
			{Key: HeaderEventID, Value: []byte(m.ID.String())},
			{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(occurredAtLayout))},
		},
		Time: m.OccurredAt,
	}
}
