package rabbitmq

import (
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrConnectionClosed = errors.New("rabbitmq connection is closed")
)

// connectionImpl implements IRabbitMQ over a single amqp connection.
type connectionImpl struct {
	url  string
	mu   sync.Mutex
	conn *amqp.Connection
}

func (c *connectionImpl) connect() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	return nil
}

// IsReady reports whether the underlying connection is open.
func (c *connectionImpl) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && !c.conn.IsClosed()
}

// Close closes the underlying connection.
func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// Channel opens a new channel, reconnecting first if the connection dropped.
func (c *connectionImpl) Channel() (IChannel, error) {
	c.mu.Lock()
	closed := c.conn == nil || c.conn.IsClosed()
	c.mu.Unlock()

	if closed {
		if err := c.connect(); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, ErrConnectionClosed
	}
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	return &channelImpl{ch: ch}, nil
}
