package bidding

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/utils"
)

// Consumer binds the bidding service's queues to the admission service's
// event handlers.
type Consumer struct {
	svc     *AdmissionService
	bus     eventbus.Subscriber
	cancels []func()
}

// NewConsumer creates a new Consumer instance
func NewConsumer(svc *AdmissionService, bus eventbus.Subscriber) *Consumer {
	return &Consumer{svc: svc, bus: bus}
}

// Start subscribes to the lifecycle events the bidding service consumes.
func (c *Consumer) Start() error {
	subscriptions := []struct {
		event   string
		handler eventbus.Handler
	}{
		{eventbus.EventAuctionStarted, c.handleAuctionStarted},
		{eventbus.EventAuctionEnded, c.handleAuctionEnded},
	}

	for _, sub := range subscriptions {
		cancel, err := c.bus.Subscribe(sub.event, eventbus.ServiceBidding, sub.handler)
		if err != nil {
			c.Stop()
			return fmt.Errorf("consumer: subscribing to %s: %w", sub.event, err)
		}
		c.cancels = append(c.cancels, cancel)
	}

	utils.Info("bidding consumers started", map[string]any{"queues": len(c.cancels)})
	return nil
}

// Stop cancels all subscriptions.
func (c *Consumer) Stop() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

func (c *Consumer) handleAuctionStarted(ctx context.Context, env eventbus.Envelope) error {
	var payload eventbus.AuctionStartedPayload
	if err := env.Decode(&payload); err != nil {
		return fmt.Errorf("consumer: decoding %s payload: %v: %w", env.Type, err, auctionerrors.ErrPoisonMessage)
	}
	if payload.ProductID == "" {
		return fmt.Errorf("consumer: %s envelope %s has no product id: %w", env.Type, env.ID, auctionerrors.ErrPoisonMessage)
	}
	return c.svc.HandleAuctionStarted(payload.ProductID)
}

func (c *Consumer) handleAuctionEnded(ctx context.Context, env eventbus.Envelope) error {
	var payload eventbus.AuctionEndedPayload
	if err := env.Decode(&payload); err != nil {
		return fmt.Errorf("consumer: decoding %s payload: %v: %w", env.Type, err, auctionerrors.ErrPoisonMessage)
	}
	if payload.ProductID == "" {
		return fmt.Errorf("consumer: %s envelope %s has no product id: %w", env.Type, env.ID, auctionerrors.ErrPoisonMessage)
	}
	return c.svc.HandleAuctionEnded(ctx, payload.ProductID)
}
