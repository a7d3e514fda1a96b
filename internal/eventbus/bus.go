package eventbus

import "context"

// Handler processes a single envelope. Returning an error triggers
// redelivery up to the bus's delivery limit, after which the envelope is
// dead-lettered.
type Handler func(ctx context.Context, env Envelope) error

// Publisher is the interface for emitting events.
type Publisher interface {
	// Publish wraps payload in an envelope and hands it to the broker,
	// blocking until the broker acknowledges receipt.
	Publish(ctx context.Context, eventType string, payload any) error
	Close() error
}

// Subscriber receives events from the bus.
type Subscriber interface {
	// Subscribe binds a durable queue named QueueName(eventType, service)
	// and delivers matching envelopes to h, one at a time. Call the
	// returned cancel function to unsubscribe.
	Subscribe(eventType, service string, h Handler) (func(), error)
	Close() error
}

// Bus is a transport that both publishes and consumes events.
type Bus interface {
	Publisher
	Subscriber
}
