package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type CreateProductRequest struct {
	SellerID      string          `json:"seller_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
}

// StartAuctionRequest carries the schedule in RFC3339. An omitted start_time
// means the auction opens immediately.
type StartAuctionRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time" binding:"required"`
}

// AuctionStateResponse is the cross-service auction view the bidding
// service's admission gates read.
type AuctionStateResponse struct {
	Status       string          `json:"status"`
	SellerID     string          `json:"seller_id"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}
