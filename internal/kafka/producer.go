package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

const (
	TopicBookingCreated    = "gameopolis.booking.created"
	TopicBookingStatus     = "gameopolis.booking.status"
	TopicEventRegistration = "gameopolis.event.registration"
)

// Topics are staff-notification streams; publishing is fire-and-forget.
var Topics = []string{TopicBookingCreated, TopicBookingStatus, TopicEventRegistration}

type Producer struct {
	Writer *kafka.Writer
}

// NewProducer returns a producer that routes by per-message topic.
func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer}
}

func (p *Producer) Publish(topic, key string, value []byte) error {
	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		},
	)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
