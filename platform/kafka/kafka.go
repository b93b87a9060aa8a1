package kafka

import (
	"context"
	"time"
)

const (
	HeaderEventType   = "event-type"
	HeaderContentType = "content-type"
)

type (
	MessageHandler func(ctx context.Context, msg Message) error
	Middleware     func(next MessageHandler) MessageHandler
)

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

type Producer interface {
	Send(ctx context.Context, key, value []byte, headers ...Header) error
}

type Header struct {
	Key   string
	Value []byte
}

// Message is a consumed record detached from the sarama types. Headers keep
// the last value written for a key.
type Message struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Headers   map[string][]byte
	Timestamp time.Time
}

func (m Message) Header(key string) string { return string(m.Headers[key]) }

// EventType is the producer-set event name, "" when the header is absent.
func (m Message) EventType() string { return m.Header(HeaderEventType) }
