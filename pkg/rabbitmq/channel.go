package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channelImpl implements IChannel.
type channelImpl struct {
	ch *amqp.Channel
}

func (c *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return c.ch.ExchangeDeclare(exc.spread())
}

func (c *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return c.ch.QueueDeclare(queue.spread())
}

func (c *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return c.ch.QueueBind(queueBind.spread())
}

func (c *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return c.ch.PublishWithContext(publish.spread(ctx))
}

func (c *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return c.ch.Consume(consume.spread())
}

func (c *channelImpl) Close() error {
	return c.ch.Close()
}
