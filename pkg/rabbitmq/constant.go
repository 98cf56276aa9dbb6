package rabbitmq

import "time"

const (
	RetryConnectionDelay = 2 * time.Second
	MaxConnectAttempts   = 10

	ContentTypePlainText = "text/plain"
	ContentTypeJSON      = "application/json"

	ExchangeTypeDirect = "direct"
	ExchangeTypeFanout = "fanout"
	ExchangeTypeTopic  = "topic"
)
