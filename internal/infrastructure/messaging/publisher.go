package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bibbank/routing-service/internal/domain/port"
	"github.com/bibbank/routing-service/pkg/events"
	pkgkafka "github.com/bibbank/routing-service/pkg/kafka"
)

var _ port.EventPublisher = (*Publisher)(nil)

// MessageProducer sends raw messages to a topic. *pkgkafka.Producer satisfies it.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// Publisher implements EventPublisher using Kafka.
type Publisher struct {
	producer MessageProducer
}

func NewPublisher(producer MessageProducer) *Publisher {
	return &Publisher{producer: producer}
}

// Publish sends events keyed by aggregate ID, so all validations of one
// routing number land on the same partition.
func (p *Publisher) Publish(ctx context.Context, topic string, domainEvents ...events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(domainEvents))
	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID(),
			},
		})
	}
	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}
