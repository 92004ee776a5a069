package queue

import (
	"context"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher publishes JSON payloads to a single durable queue on the
// default exchange.
type Publisher struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

// NewPublisher opens a channel on conn and declares the queue.
func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &Publisher{ch: ch, queue: queue, log: log}, nil
}

// PublishJSON marshals v and publishes it as a persistent message.
func (p *Publisher) PublishJSON(ctx context.Context, v interface{}) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Close releases the underlying channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}
