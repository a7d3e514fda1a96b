package catalog

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/utils"
)

// Consumer binds the catalog service's queues to the catalog service's
// event handlers.
type Consumer struct {
	svc     *CatalogService
	bus     eventbus.Subscriber
	cancels []func()
}

// NewConsumer creates a new Consumer instance
func NewConsumer(svc *CatalogService, bus eventbus.Subscriber) *Consumer {
	return &Consumer{svc: svc, bus: bus}
}

// Start subscribes to the bid outcome events the catalog consumes.
func (c *Consumer) Start() error {
	subscriptions := []struct {
		event   string
		handler eventbus.Handler
	}{
		{eventbus.EventBidPlaced, c.handleBidPlaced},
		{eventbus.EventAuctionWinner, c.handleAuctionWinner},
	}

	for _, sub := range subscriptions {
		cancel, err := c.bus.Subscribe(sub.event, eventbus.ServiceCatalog, sub.handler)
		if err != nil {
			c.Stop()
			return fmt.Errorf("consumer: subscribing to %s: %w", sub.event, err)
		}
		c.cancels = append(c.cancels, cancel)
	}

	utils.Info("catalog consumers started", map[string]any{"queues": len(c.cancels)})
	return nil
}

// Stop cancels all subscriptions.
func (c *Consumer) Stop() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

func (c *Consumer) handleBidPlaced(ctx context.Context, env eventbus.Envelope) error {
	var payload eventbus.BidPlacedPayload
	if err := env.Decode(&payload); err != nil {
		return fmt.Errorf("consumer: decoding %s payload: %v: %w", env.Type, err, auctionerrors.ErrPoisonMessage)
	}
	if payload.ProductID == "" {
		return fmt.Errorf("consumer: %s envelope %s has no product id: %w", env.Type, env.ID, auctionerrors.ErrPoisonMessage)
	}
	return c.svc.HandleBidPlaced(payload.ProductID, payload.Amount)
}

func (c *Consumer) handleAuctionWinner(ctx context.Context, env eventbus.Envelope) error {
	var payload eventbus.AuctionWinnerPayload
	if err := env.Decode(&payload); err != nil {
		return fmt.Errorf("consumer: decoding %s payload: %v: %w", env.Type, err, auctionerrors.ErrPoisonMessage)
	}
	if payload.ProductID == "" {
		return fmt.Errorf("consumer: %s envelope %s has no product id: %w", env.Type, env.ID, auctionerrors.ErrPoisonMessage)
	}
	return c.svc.HandleAuctionWinner(payload.ProductID, payload.WinnerID)
}
