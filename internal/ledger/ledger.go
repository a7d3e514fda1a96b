// Package ledger is the bidding service's source of truth for who currently
// leads each auction. Bids are stored as one keyed record per bid id plus a
// per-product index ordered by amount descending (ties broken by earliest
// timestamp), so ranking reads never reconstruct records by scanning.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// Ledger defines the bid storage contract for the admission engine.
type Ledger interface {
	// InitProduct prepares the per-product index. Idempotent.
	InitProduct(productID string)
	// RecordBid inserts the bid only if its amount still exceeds both the
	// given floor and the highest recorded bid at commit time. The check
	// and the insert happen atomically, so of two concurrent bids at most
	// one can win.
	RecordBid(bid model.Bid, floor decimal.Decimal) error
	HighestBid(productID string) (model.Bid, error)
	BidsByProduct(productID string) ([]model.Bid, error)
	BidsByUser(userID string) ([]model.Bid, error)
	BidCount(productID string) int
	// MarkSuperseded flips every active bid for the product except
	// exceptBidID to outbid.
	MarkSuperseded(productID, exceptBidID string) error
	// FinalizeWinner marks the current highest bid as winner. Idempotent:
	// re-invocation returns the same record without side effects.
	FinalizeWinner(productID string) (model.Bid, error)
	// ScheduleRetention marks the product's bids for removal after ttl.
	ScheduleRetention(productID string, ttl time.Duration)
	// PurgeExpired removes bid data whose retention deadline has passed
	// and reports how many products were purged.
	PurgeExpired(now time.Time) int
}

// MemoryLedger is a concurrency-safe in-memory implementation of Ledger
type MemoryLedger struct {
	mu        sync.Mutex
	bids      map[string]*model.Bid   // key: bidID -> record
	byProduct map[string][]*model.Bid // key: productID -> bids, amount desc
	byUser    map[string][]string     // key: userID -> bidIDs
	finalized map[string]string       // key: productID -> winning bidID
	retention map[string]time.Time    // key: productID -> purge deadline
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bids:      make(map[string]*model.Bid),
		byProduct: make(map[string][]*model.Bid),
		byUser:    make(map[string][]string),
		finalized: make(map[string]string),
		retention: make(map[string]time.Time),
	}
}

// InitProduct ensures the product's index exists. Safe to call repeatedly.
func (l *MemoryLedger) InitProduct(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byProduct[productID]; !ok {
		l.byProduct[productID] = nil
	}
}

// RecordBid performs the conditional atomic insert described on the Ledger
// interface.
func (l *MemoryLedger) RecordBid(bid model.Bid, floor decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	effective := floor
	ranked := l.byProduct[bid.ProductID]
	if len(ranked) > 0 && ranked[0].Amount.GreaterThan(effective) {
		effective = ranked[0].Amount
	}
	if bid.Amount.LessThanOrEqual(effective) {
		return fmt.Errorf("record bid for product %s: floor is %s: %w",
			bid.ProductID, effective.String(), auctionerrors.ErrBidTooLow)
	}

	stored := bid
	stored.Status = model.BidStatusActive
	l.bids[stored.BidID] = &stored
	l.byProduct[bid.ProductID] = insertRanked(ranked, &stored)
	l.byUser[bid.UserID] = append(l.byUser[bid.UserID], stored.BidID)

	return nil
}

// insertRanked keeps the index ordered by amount descending; equal amounts
// keep the earlier bid first.
func insertRanked(ranked []*model.Bid, bid *model.Bid) []*model.Bid {
	at := len(ranked)
	for i, existing := range ranked {
		if bid.Amount.GreaterThan(existing.Amount) {
			at = i
			break
		}
	}
	ranked = append(ranked, nil)
	copy(ranked[at+1:], ranked[at:])
	ranked[at] = bid
	return ranked
}

// HighestBid returns the top-ranked bid for a product
func (l *MemoryLedger) HighestBid(productID string) (model.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ranked := l.byProduct[productID]
	if len(ranked) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	return *ranked[0], nil
}

// BidsByProduct returns all bids for a product in descending amount order
func (l *MemoryLedger) BidsByProduct(productID string) ([]model.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ranked := l.byProduct[productID]
	if len(ranked) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(ranked))
	for _, b := range ranked {
		bids = append(bids, *b)
	}
	return bids, nil
}

// BidsByUser returns all bids a user has placed, newest last
func (l *MemoryLedger) BidsByUser(userID string) ([]model.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := l.byUser[userID]
	if len(ids) == 0 {
		return nil, fmt.Errorf("get bids for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}

	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if b, ok := l.bids[id]; ok {
			bids = append(bids, *b)
		}
	}
	return bids, nil
}

// BidCount returns the number of bids recorded for a product
func (l *MemoryLedger) BidCount(productID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byProduct[productID])
}

// MarkSuperseded flips other active bids for the product to outbid
func (l *MemoryLedger) MarkSuperseded(productID, exceptBidID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.byProduct[productID] {
		if b.BidID != exceptBidID && b.Status == model.BidStatusActive {
			b.Status = model.BidStatusOutbid
		}
	}
	return nil
}

// FinalizeWinner marks the current highest bid as the winner
func (l *MemoryLedger) FinalizeWinner(productID string) (model.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if winID, ok := l.finalized[productID]; ok {
		return *l.bids[winID], nil
	}

	ranked := l.byProduct[productID]
	if len(ranked) == 0 {
		return model.Bid{}, fmt.Errorf("finalize winner for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	top := ranked[0]
	top.Status = model.BidStatusWinner
	l.finalized[productID] = top.BidID
	return *top, nil
}

// ScheduleRetention sets the purge deadline for a product's bid data
func (l *MemoryLedger) ScheduleRetention(productID string, ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.retention[productID] = time.Now().Add(ttl)
}

// PurgeExpired drops bid data for products past their retention deadline
func (l *MemoryLedger) PurgeExpired(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	purged := 0
	for productID, deadline := range l.retention {
		if now.Before(deadline) {
			continue
		}
		for _, b := range l.byProduct[productID] {
			delete(l.bids, b.BidID)
			l.byUser[b.UserID] = removeID(l.byUser[b.UserID], b.BidID)
		}
		delete(l.byProduct, productID)
		delete(l.finalized, productID)
		delete(l.retention, productID)
		purged++
	}
	return purged
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
