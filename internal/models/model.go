package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidStatus tracks the lifecycle of a single bid.
type BidStatus string

const (
	BidStatusActive BidStatus = "active"
	BidStatusOutbid BidStatus = "outbid"
	BidStatusWinner BidStatus = "winner"
)

// Bid represents a user's bid on a product
type Bid struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Status    BidStatus       `json:"status"`
}

// AuctionStatus is the lifecycle state of a product's auction.
type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "draft"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// auctionTransitions enumerates every legal (from, to) pair. Ended and
// cancelled are terminal: no transition leaves them.
var auctionTransitions = map[AuctionStatus][]AuctionStatus{
	AuctionDraft:     {AuctionActive},
	AuctionActive:    {AuctionEnded, AuctionCancelled},
	AuctionEnded:     {},
	AuctionCancelled: {},
}

// ValidTransition reports whether moving an auction from one status to
// another is allowed by the transition table.
func ValidTransition(from, to AuctionStatus) bool {
	for _, next := range auctionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Auction holds the lifecycle fields of a product's auction. CurrentPrice
// and TotalBids live on Product and are updated asynchronously by event.
type Auction struct {
	Status    AuctionStatus `json:"status"`
	StartTime *time.Time    `json:"start_time,omitempty"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
	WinnerID  string        `json:"winner_id,omitempty"`
	TotalBids int           `json:"total_bids"`
}

// Product represents an auctionable listing owned by the catalog service
type Product struct {
	ProductID     string          `json:"product_id"`
	SellerID      string          `json:"seller_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Auction       Auction         `json:"auction"`
}
