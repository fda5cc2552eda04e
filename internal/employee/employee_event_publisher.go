package employee

import (
	"context"
	"encoding/json"
	"go-hris-registry/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=employee_event_publisher.go -destination=mock/employee_event_publisher_mock.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, event events.EmployeeEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, events.EmployeeEvent) error {
	return nil
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaEventPublisher publishes to topic, falling back to the registry
// topic when empty. The writer must not set its own Topic.
func NewKafkaEventPublisher(writer MessageWriter, topic string) EventPublisher {
	return &kafkaEventPublisher{writer: writer, topic: topic}
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, event events.EmployeeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.topic
	if topic == "" {
		topic = events.EmployeeRegistryTopic
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
