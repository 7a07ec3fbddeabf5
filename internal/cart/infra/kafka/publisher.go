package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dwikikusuma/naija-assistant/internal/cart/app"
	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

var _ app.EventPublisher = (*Publisher)(nil)

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes cart events keyed by user id, so one user's events stay
// ordered within a partition.
type Publisher struct {
	w MessageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           5 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) Publish(ctx context.Context, evt domain.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal cart event: %w", err)
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.UserID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	})
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
