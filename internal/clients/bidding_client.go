package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// BidReader exposes the highest-bid read the catalog uses to determine a
// winner when ending an auction.
type BidReader interface {
	HighestBid(ctx context.Context, productID string) (model.Bid, error)
}

// BiddingClient reads bid state from the bidding service over HTTP.
type BiddingClient struct {
	baseURL string
	client  *http.Client
}

// NewBiddingClient creates a bidding read client for the given base URL.
func NewBiddingClient(baseURL string) *BiddingClient {
	return &BiddingClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// HighestBid fetches the current leading bid for a product. A product with
// no bids maps to ErrNoBids, which callers treat as a zero-bid auction
// rather than a failure.
func (c *BiddingClient) HighestBid(ctx context.Context, productID string) (model.Bid, error) {
	url := fmt.Sprintf("%s/products/%s/bids/highest", c.baseURL, productID)

	data, err := getJSON(ctx, c.client, url, "bidding service")
	if err != nil {
		// The bidding service reports "no bids yet" as absence.
		if errors.Is(err, auctionerrors.ErrProductNotFound) {
			return model.Bid{}, fmt.Errorf("highest bid for product %s: %w", productID, auctionerrors.ErrNoBids)
		}
		return model.Bid{}, err
	}

	var bid model.Bid
	if err := json.Unmarshal(data, &bid); err != nil {
		return model.Bid{}, fmt.Errorf("decoding highest bid for product %s: %v: %w",
			productID, err, auctionerrors.ErrUnavailable)
	}
	return bid, nil
}
