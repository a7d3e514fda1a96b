package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/internal/ledger"
	"auction-marketplace/internal/metrics"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// AdmissionService decides whether a submitted bid is accepted. It owns the
// ledger write path and emits the bid outcome events other services consume.
type AdmissionService struct {
	ledger    ledger.Ledger
	catalog   clients.CatalogReader
	bus       eventbus.Publisher
	locks     productLocks
	retention time.Duration
}

// NewAdmissionService creates a new AdmissionService instance. retention is
// how long bid data outlives an ended auction before it may be purged.
func NewAdmissionService(l ledger.Ledger, catalog clients.CatalogReader, bus eventbus.Publisher, retention time.Duration) *AdmissionService {
	return &AdmissionService{
		ledger:    l,
		catalog:   catalog,
		bus:       bus,
		retention: retention,
	}
}

// PlaceBid validates and records a bid. The gates run in order and each
// short-circuits: product exists, auction active, bidder is not the seller,
// amount exceeds the floor, and finally the ledger's own conditional insert.
// Events are published only after the ledger write commits; a publish
// failure surfaces as a retryable error but never rolls the bid back.
func (s *AdmissionService) PlaceBid(ctx context.Context, productID, userID string, amount decimal.Decimal) (model.Bid, error) {
	if productID == "" || userID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing productID or userID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	bid, prev, err := s.admit(ctx, productID, userID, amount)
	if err != nil {
		metrics.BidsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return model.Bid{}, err
	}
	metrics.BidsAdmitted.Inc()

	// The bid is committed from here on. Publishing blocks on broker
	// acknowledgment; if it fails the caller gets a retryable error while
	// the recorded bid stands as the new floor.
	if err := s.publishBidPlaced(ctx, bid); err != nil {
		utils.Error("bid recorded but bid.placed publish failed", map[string]any{
			"bid_id":     bid.BidID,
			"product_id": productID,
			"error":      err.Error(),
		})
		return bid, fmt.Errorf("service: bid %s recorded but not propagated: %w", bid.BidID, err)
	}

	if prev != nil && prev.UserID != userID {
		if err := s.publishBidOutbid(ctx, *prev, bid); err != nil {
			// The outbid notification is re-derivable from the ledger;
			// log and keep going.
			utils.Warn("bid.outbid publish failed", map[string]any{
				"product_id": productID,
				"outbid_bid": prev.BidID,
				"error":      err.Error(),
			})
		}
	}

	return bid, nil
}

// admit runs the admission gates and the ledger write inside the
// per-product critical section, returning the accepted bid and the previous
// leader if one existed.
func (s *AdmissionService) admit(ctx context.Context, productID, userID string, amount decimal.Decimal) (model.Bid, *model.Bid, error) {
	unlock := s.locks.lock(productID)
	defer unlock()

	state, err := s.catalog.AuctionState(ctx, productID)
	if err != nil {
		return model.Bid{}, nil, fmt.Errorf("service: fetching auction state for product %s: %w", productID, err)
	}
	if state.Status != model.AuctionActive {
		return model.Bid{}, nil, fmt.Errorf("service: product %s is %s: %w", productID, state.Status, auctionerrors.ErrAuctionNotActive)
	}
	if state.SellerID == userID {
		return model.Bid{}, nil, fmt.Errorf("service: user %s owns product %s: %w", userID, productID, auctionerrors.ErrSelfBid)
	}

	var prev *model.Bid
	highest, err := s.ledger.HighestBid(productID)
	switch {
	case err == nil:
		prev = &highest
	case errors.Is(err, auctionerrors.ErrNoBids):
		// First bid for this product.
	default:
		return model.Bid{}, nil, fmt.Errorf("service: reading ledger for product %s: %w", productID, err)
	}

	// Double floor check: the catalog's cached price and the ledger's own
	// record are updated asynchronously, so either alone can be stale.
	floor := state.CurrentPrice
	if prev != nil && prev.Amount.GreaterThan(floor) {
		floor = prev.Amount
	}
	if amount.LessThanOrEqual(floor) {
		return model.Bid{}, nil, fmt.Errorf("service: floor is %s: %w", floor.String(), auctionerrors.ErrBidTooLow)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		ProductID: productID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
		Status:    model.BidStatusActive,
	}

	if err := s.ledger.RecordBid(bid, state.CurrentPrice); err != nil {
		return model.Bid{}, nil, fmt.Errorf("service: recording bid for product %s: %w", productID, err)
	}
	if err := s.ledger.MarkSuperseded(productID, bid.BidID); err != nil {
		return model.Bid{}, nil, fmt.Errorf("service: superseding bids for product %s: %w", productID, err)
	}

	return bid, prev, nil
}

// GetWinner returns the winning bid once the catalog reports the auction
// ended. Finalization is idempotent.
func (s *AdmissionService) GetWinner(ctx context.Context, productID string) (model.Bid, error) {
	if productID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	state, err := s.catalog.AuctionState(ctx, productID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: fetching auction state for product %s: %w", productID, err)
	}
	if state.Status != model.AuctionEnded {
		return model.Bid{}, fmt.Errorf("service: product %s is %s: %w", productID, state.Status, auctionerrors.ErrAuctionNotEnded)
	}

	winner, err := s.ledger.FinalizeWinner(productID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: finalizing winner for product %s: %w", productID, err)
	}
	return winner, nil
}

// GetProductBids returns all bids for a product, highest first
func (s *AdmissionService) GetProductBids(productID string) ([]model.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	return s.ledger.BidsByProduct(productID)
}

// GetHighestBid returns the current leading bid for a product
func (s *AdmissionService) GetHighestBid(productID string) (model.Bid, error) {
	if productID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	return s.ledger.HighestBid(productID)
}

// GetUserBids returns all bids a user has placed
func (s *AdmissionService) GetUserBids(userID string) ([]model.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	return s.ledger.BidsByUser(userID)
}

// HandleAuctionStarted prepares the ledger for a newly active auction.
// Replays are harmless.
func (s *AdmissionService) HandleAuctionStarted(productID string) error {
	s.ledger.InitProduct(productID)
	utils.Info("ledger initialized for auction", map[string]any{"product_id": productID})
	return nil
}

// HandleAuctionEnded finalizes the winner for an ended auction and
// publishes auction.winner. A zero-bid auction publishes a null winner.
// Idempotent under redelivery: finalization converges and the consumer of
// auction.winner reconciles to the same state.
func (s *AdmissionService) HandleAuctionEnded(ctx context.Context, productID string) error {
	payload := eventbus.AuctionWinnerPayload{ProductID: productID}

	winner, err := s.ledger.FinalizeWinner(productID)
	switch {
	case err == nil:
		payload.WinnerID = &winner.UserID
		payload.WinningBid = winner.Amount
		payload.BidID = &winner.BidID
	case errors.Is(err, auctionerrors.ErrNoBids):
		// Zero bids is a valid terminal outcome.
	default:
		return fmt.Errorf("service: finalizing winner for product %s: %w", productID, err)
	}

	if err := s.bus.Publish(ctx, eventbus.EventAuctionWinner, payload); err != nil {
		return fmt.Errorf("service: publishing auction.winner for product %s: %w", productID, err)
	}

	s.ledger.ScheduleRetention(productID, s.retention)

	winnerID := "none"
	if payload.WinnerID != nil {
		winnerID = *payload.WinnerID
	}
	utils.Info("auction winner determined", map[string]any{
		"product_id": productID,
		"winner_id":  winnerID,
	})
	return nil
}

func (s *AdmissionService) publishBidPlaced(ctx context.Context, bid model.Bid) error {
	return s.bus.Publish(ctx, eventbus.EventBidPlaced, eventbus.BidPlacedPayload{
		BidID:     bid.BidID,
		ProductID: bid.ProductID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		Timestamp: bid.CreatedAt.UnixMilli(),
	})
}

func (s *AdmissionService) publishBidOutbid(ctx context.Context, outbid, newBid model.Bid) error {
	return s.bus.Publish(ctx, eventbus.EventBidOutbid, eventbus.BidOutbidPayload{
		OutbidBidID:  outbid.BidID,
		OutbidUserID: outbid.UserID,
		OutbidAmount: outbid.Amount,
		NewBidID:     newBid.BidID,
		NewUserID:    newBid.UserID,
		NewAmount:    newBid.Amount,
		ProductID:    newBid.ProductID,
	})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return "bid_too_low"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return "self_bid"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return "auction_not_active"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, auctionerrors.ErrUnavailable):
		return "unavailable"
	default:
		return "other"
	}
}

// productLocks serializes admission per product so concurrent bids cannot
// both observe the same floor.
type productLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *productLocks) lock(productID string) func() {
	p.mu.Lock()
	if p.locks == nil {
		p.locks = make(map[string]*sync.Mutex)
	}
	l, ok := p.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[productID] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
