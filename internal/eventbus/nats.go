package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/metrics"
	"auction-marketplace/utils"
)

const (
	defaultFlushTimeout = 5 * time.Second
	defaultRetryDelay   = 100 * time.Millisecond
)

// NATSBus publishes and consumes event envelopes over NATS subjects.
// Subjects are the dotted event names; queue groups follow the
// <event>.<service> binding convention.
type NATSBus struct {
	conn       *nats.Conn
	maxDeliver int
	retryDelay time.Duration
}

// NewNATSBus connects to NATS with automatic reconnection support.
// maxDeliver bounds how many times a failing handler sees the same envelope
// before it is dead-lettered. Extra nats.Option values can be appended.
func NewNATSBus(url string, maxDeliver int, opts ...nats.Option) (*NATSBus, error) {
	defaults := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, auctionerrors.ErrUnavailable)
	}
	if maxDeliver < 1 {
		maxDeliver = 1
	}
	return &NATSBus{conn: nc, maxDeliver: maxDeliver, retryDelay: defaultRetryDelay}, nil
}

// Publish wraps payload in an envelope and sends it to the subject named by
// eventType. It blocks on a broker round-trip so a reported success means
// the envelope was durably queued for propagation.
func (b *NATSBus) Publish(ctx context.Context, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s payload: %w", eventType, err)
	}

	env := Envelope{
		ID:        utils.GenerateID(),
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   raw,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshaling %s envelope: %w", eventType, err)
	}

	if err := b.conn.Publish(eventType, data); err != nil {
		return fmt.Errorf("publishing %s: %v: %w", eventType, err, auctionerrors.ErrUnavailable)
	}
	if err := b.conn.FlushTimeout(b.flushTimeout(ctx)); err != nil {
		return fmt.Errorf("awaiting broker ack for %s: %v: %w", eventType, err, auctionerrors.ErrUnavailable)
	}

	metrics.EventsPublished.WithLabelValues(eventType).Inc()
	return nil
}

// Subscribe binds the queue group QueueName(eventType, service) to the
// event's subject. Envelopes are dispatched to h one at a time per
// subscription; handler failures are redelivered up to the bus limit and
// then routed to the dead-letter subject.
func (b *NATSBus) Subscribe(eventType, service string, h Handler) (func(), error) {
	queue := QueueName(eventType, service)

	sub, err := b.conn.QueueSubscribe(eventType, queue, func(msg *nats.Msg) {
		b.dispatch(queue, msg.Data, h)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing %s: %w", queue, err)
	}
	// Flush ensures the subscription is registered on the server before
	// returning, so messages published on other connections are routed.
	if err := b.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return nil, fmt.Errorf("flushing subscription %s: %w", queue, err)
	}

	cancel := func() { _ = sub.Unsubscribe() }
	return cancel, nil
}

// dispatch decodes and processes one message. An undecodable payload is a
// poison message and goes straight to the dead-letter queue.
func (b *NATSBus) dispatch(queue string, data []byte, h Handler) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		utils.Error("event decode failed, dead-lettering", map[string]any{
			"queue": queue,
			"error": fmt.Errorf("%v: %w", err, auctionerrors.ErrPoisonMessage).Error(),
		})
		b.deadLetter(queue, data)
		return
	}

	ctx := context.Background()
	var err error
	for attempt := 1; attempt <= b.maxDeliver; attempt++ {
		if err = h(ctx, env); err == nil {
			metrics.EventsProcessed.WithLabelValues(queue, "ok").Inc()
			return
		}
		// A poison payload will never succeed; skip the remaining deliveries.
		if errors.Is(err, auctionerrors.ErrPoisonMessage) {
			break
		}
		utils.Warn("event handler failed", map[string]any{
			"queue":   queue,
			"event":   env.Type,
			"id":      env.ID,
			"attempt": attempt,
			"error":   err.Error(),
		})
		metrics.EventsProcessed.WithLabelValues(queue, "retried").Inc()
		if attempt < b.maxDeliver {
			time.Sleep(b.retryDelay)
		}
	}

	utils.Error("event exhausted redeliveries, dead-lettering", map[string]any{
		"queue": queue,
		"event": env.Type,
		"id":    env.ID,
		"error": err.Error(),
	})
	b.deadLetter(queue, data)
}

func (b *NATSBus) deadLetter(queue string, data []byte) {
	if err := b.conn.Publish(DeadLetterQueue(queue), data); err != nil {
		utils.Error("dead-letter publish failed", map[string]any{
			"queue": queue,
			"error": err.Error(),
		})
		return
	}
	_ = b.conn.FlushTimeout(defaultFlushTimeout)
	metrics.EventsProcessed.WithLabelValues(queue, "dead_letter").Inc()
}

func (b *NATSBus) flushTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			return remaining
		}
	}
	return defaultFlushTimeout
}

func (b *NATSBus) Close() error {
	b.conn.Close()
	return nil
}
