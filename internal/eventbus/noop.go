package eventbus

import "context"

// NoopPublisher discards all events. Useful for wiring a service without a
// broker, e.g. in handler-level tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, payload any) error { return nil }

func (NoopPublisher) Close() error { return nil }
