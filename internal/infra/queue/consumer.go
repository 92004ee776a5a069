package queue

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// HandlerFunc processes one delivery body. A non-nil error requeues the
// message once; a redelivered failure is dropped.
type HandlerFunc func(ctx context.Context, body []byte) error

// Consumer consumes a single durable queue with manual acks.
type Consumer struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, prefetch int, log *zap.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			_ = ch.Close()
			return nil, err
		}
	}
	return &Consumer{ch: ch, queue: queue, log: log}, nil
}

// Run consumes deliveries until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) error {
	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			if err := handle(ctx, d.Body); err != nil {
				c.log.Sugar().Warnw("message handling failed",
					"queue", c.queue, "redelivered", d.Redelivered, "err", err)
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) Close() error {
	return c.ch.Close()
}
