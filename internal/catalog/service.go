package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/eventbus"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// CatalogService owns product listings and drives the auction lifecycle.
// Bid state itself lives in the bidding service; this side learns about it
// through events and a read-only client.
type CatalogService struct {
	repo    ProductRepository
	bidding clients.BidReader
	bus     eventbus.Publisher
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo ProductRepository, bidding clients.BidReader, bus eventbus.Publisher) *CatalogService {
	return &CatalogService{repo: repo, bidding: bidding, bus: bus}
}

// CreateProduct registers a new listing in draft state.
func (s *CatalogService) CreateProduct(ctx context.Context, sellerID, title, description string, startingPrice decimal.Decimal) (model.Product, error) {
	if sellerID == "" || title == "" {
		return model.Product{}, fmt.Errorf("service: %w - missing sellerID or title", auctionerrors.ErrInvalidBid)
	}
	if !startingPrice.IsPositive() {
		return model.Product{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidBid)
	}

	product := model.Product{
		ProductID:     utils.GenerateID(),
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Auction:       model.Auction{Status: model.AuctionDraft},
	}
	if err := s.repo.Create(product); err != nil {
		return model.Product{}, fmt.Errorf("service: creating product: %w", err)
	}

	// product.created is informational; a failed publish does not undo the
	// listing.
	err := s.bus.Publish(ctx, eventbus.EventProductCreated, eventbus.ProductCreatedPayload{
		ProductID:     product.ProductID,
		SellerID:      product.SellerID,
		Title:         product.Title,
		StartingPrice: product.StartingPrice,
	})
	if err != nil {
		utils.Warn("product.created publish failed", map[string]any{
			"product_id": product.ProductID,
			"error":      err.Error(),
		})
	}

	return product, nil
}

// GetProduct returns a product by ID
func (s *CatalogService) GetProduct(productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	return s.repo.GetByID(productID)
}

// StartAuction opens bidding on a draft product. The status flip commits
// before auction.started is published; a publish failure leaves the auction
// active and surfaces as retryable.
func (s *CatalogService) StartAuction(ctx context.Context, productID string, startTime, endTime time.Time) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	if !endTime.After(startTime) {
		return model.Product{}, fmt.Errorf("service: end time %s is not after start time %s: %w",
			endTime.Format(time.RFC3339), startTime.Format(time.RFC3339), auctionerrors.ErrInvalidSchedule)
	}

	if err := s.repo.StartAuction(productID, startTime, endTime); err != nil {
		return model.Product{}, fmt.Errorf("service: starting auction: %w", err)
	}

	product, err := s.repo.GetByID(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: reading started auction: %w", err)
	}

	err = s.bus.Publish(ctx, eventbus.EventAuctionStarted, eventbus.AuctionStartedPayload{
		ProductID:     productID,
		StartingPrice: product.StartingPrice,
		StartTime:     startTime.UnixMilli(),
		EndTime:       endTime.UnixMilli(),
	})
	if err != nil {
		utils.Error("auction started but auction.started publish failed", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return product, fmt.Errorf("service: auction %s started but not propagated: %w", productID, err)
	}

	utils.Info("auction started", map[string]any{"product_id": productID})
	return product, nil
}

// EndAuction closes an active auction. The winning bid is read from the
// bidding service before the status flips, so an unreachable bidding service
// fails the whole operation and leaves the auction open for a retry.
func (s *CatalogService) EndAuction(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	current, err := s.repo.GetByID(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: reading product: %w", err)
	}
	if !model.ValidTransition(current.Auction.Status, model.AuctionEnded) {
		return model.Product{}, fmt.Errorf("service: product %s is %s: %w",
			productID, current.Auction.Status, auctionerrors.ErrInvalidTransition)
	}

	var winnerID *string
	finalPrice := current.CurrentPrice
	highest, err := s.bidding.HighestBid(ctx, productID)
	switch {
	case err == nil:
		winnerID = &highest.UserID
		finalPrice = highest.Amount
	case errors.Is(err, auctionerrors.ErrNoBids):
		// Ends with no winner.
	default:
		return model.Product{}, fmt.Errorf("service: reading highest bid for product %s: %w", productID, err)
	}

	if err := s.repo.EndAuction(productID, winnerID, finalPrice); err != nil {
		return model.Product{}, fmt.Errorf("service: ending auction: %w", err)
	}

	product, err := s.repo.GetByID(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: reading ended auction: %w", err)
	}

	err = s.bus.Publish(ctx, eventbus.EventAuctionEnded, eventbus.AuctionEndedPayload{
		ProductID:  productID,
		FinalPrice: finalPrice,
		WinnerID:   winnerID,
		TotalBids:  product.Auction.TotalBids,
	})
	if err != nil {
		utils.Error("auction ended but auction.ended publish failed", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return product, fmt.Errorf("service: auction %s ended but not propagated: %w", productID, err)
	}

	utils.Info("auction ended", map[string]any{
		"product_id": productID,
		"total_bids": product.Auction.TotalBids,
	})
	return product, nil
}

// CancelAuction withdraws an active auction. No event is published; bids
// already recorded stay in the ledger until retention expires.
func (s *CatalogService) CancelAuction(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	if err := s.repo.CancelAuction(productID); err != nil {
		return model.Product{}, fmt.Errorf("service: cancelling auction: %w", err)
	}
	utils.Info("auction cancelled", map[string]any{"product_id": productID})
	return s.repo.GetByID(productID)
}

// HandleBidPlaced applies an admitted bid to the product's cached price.
// Replays and out-of-order deliveries are absorbed by the conditional update.
func (s *CatalogService) HandleBidPlaced(productID string, amount decimal.Decimal) error {
	applied, err := s.repo.ApplyBid(productID, amount)
	if err != nil {
		return fmt.Errorf("service: applying bid to product %s: %w", productID, err)
	}
	if applied {
		utils.Debug("current price updated from bid", map[string]any{
			"product_id": productID,
			"amount":     amount.String(),
		})
	}
	return nil
}

// HandleAuctionWinner reconciles the finalized winner onto the product.
func (s *CatalogService) HandleAuctionWinner(productID string, winnerID *string) error {
	if winnerID == nil {
		// Zero-bid auction; nothing to reconcile.
		return nil
	}
	if err := s.repo.SetWinner(productID, *winnerID); err != nil {
		return fmt.Errorf("service: recording winner for product %s: %w", productID, err)
	}
	utils.Info("winner reconciled", map[string]any{
		"product_id": productID,
		"winner_id":  *winnerID,
	})
	return nil
}
