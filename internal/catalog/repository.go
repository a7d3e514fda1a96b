package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// ProductRepository defines the catalog's storage contract. The lifecycle
// methods are conditional: each checks the transition table atomically with
// the write, so concurrent callers cannot drive an auction through an
// illegal path.
type ProductRepository interface {
	Create(product model.Product) error
	GetByID(productID string) (model.Product, error)
	// StartAuction moves draft to active and records the schedule.
	StartAuction(productID string, startTime, endTime time.Time) error
	// EndAuction moves active to ended, recording the outcome.
	EndAuction(productID string, winnerID *string, finalPrice decimal.Decimal) error
	// CancelAuction moves active to cancelled.
	CancelAuction(productID string) error
	// ApplyBid raises the product's current price and bid count, but only
	// while the auction is active and the amount actually exceeds the
	// current price. Returns whether the update was applied, so stale or
	// replayed events degrade to no-ops instead of errors.
	ApplyBid(productID string, amount decimal.Decimal) (bool, error)
	// SetWinner reconciles the recorded winner from the bidding service's
	// finalization event. Idempotent.
	SetWinner(productID string, winnerID string) error
}

// MemoryRepository is a concurrency-safe in-memory ProductRepository
type MemoryRepository struct {
	mu       sync.Mutex
	products map[string]*model.Product
}

// NewMemoryRepository creates a new in-memory repository instance
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: make(map[string]*model.Product)}
}

// Create stores a new product
func (r *MemoryRepository) Create(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ProductID]; ok {
		return fmt.Errorf("create product %s: already exists", product.ProductID)
	}
	stored := product
	r.products[product.ProductID] = &stored
	return nil
}

// GetByID returns a product by its ID
func (r *MemoryRepository) GetByID(productID string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return *p, nil
}

// StartAuction transitions a draft auction to active
func (r *MemoryRepository) StartAuction(productID string, startTime, endTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("start auction for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if !model.ValidTransition(p.Auction.Status, model.AuctionActive) {
		return fmt.Errorf("start auction for product %s: %s -> active: %w",
			productID, p.Auction.Status, auctionerrors.ErrInvalidTransition)
	}

	p.Auction.Status = model.AuctionActive
	p.Auction.StartTime = &startTime
	p.Auction.EndTime = &endTime
	return nil
}

// EndAuction transitions an active auction to ended and records the outcome
func (r *MemoryRepository) EndAuction(productID string, winnerID *string, finalPrice decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("end auction for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if !model.ValidTransition(p.Auction.Status, model.AuctionEnded) {
		return fmt.Errorf("end auction for product %s: %s -> ended: %w",
			productID, p.Auction.Status, auctionerrors.ErrInvalidTransition)
	}

	p.Auction.Status = model.AuctionEnded
	if winnerID != nil {
		p.Auction.WinnerID = *winnerID
	}
	if finalPrice.GreaterThan(p.CurrentPrice) {
		p.CurrentPrice = finalPrice
	}
	return nil
}

// CancelAuction transitions an active auction to cancelled
func (r *MemoryRepository) CancelAuction(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("cancel auction for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if !model.ValidTransition(p.Auction.Status, model.AuctionCancelled) {
		return fmt.Errorf("cancel auction for product %s: %s -> cancelled: %w",
			productID, p.Auction.Status, auctionerrors.ErrInvalidTransition)
	}

	p.Auction.Status = model.AuctionCancelled
	return nil
}

// ApplyBid conditionally raises the current price from a bid.placed event
func (r *MemoryRepository) ApplyBid(productID string, amount decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return false, fmt.Errorf("apply bid to product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	// Stale, out-of-order or replayed events fail this condition and are
	// absorbed silently.
	if p.Auction.Status != model.AuctionActive || !amount.GreaterThan(p.CurrentPrice) {
		return false, nil
	}

	p.CurrentPrice = amount
	p.Auction.TotalBids++
	return true, nil
}

// SetWinner reconciles the winner from the auction.winner event
func (r *MemoryRepository) SetWinner(productID string, winnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("set winner for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	p.Auction.WinnerID = winnerID
	// auction.winner can outrun the local end transition under redelivery.
	if p.Auction.Status == model.AuctionActive {
		p.Auction.Status = model.AuctionEnded
	}
	return nil
}
