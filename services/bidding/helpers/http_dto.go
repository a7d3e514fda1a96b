package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	UserID    string          `json:"user_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
	Status    string          `json:"status"`
}
