// Package clients holds the narrow HTTP reads each service consumes from
// its peer. Lifecycle facts travel exclusively over the event bus; these
// clients exist only for point-in-time reads (auction state for admission,
// highest bid for ending an auction).
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

const requestTimeout = 5 * time.Second

// AuctionState is the catalog's read model consumed by the admission engine.
type AuctionState struct {
	Status       model.AuctionStatus `json:"status"`
	SellerID     string              `json:"seller_id"`
	CurrentPrice decimal.Decimal     `json:"current_price"`
}

// CatalogReader exposes the auction state read used to gate bid admission.
type CatalogReader interface {
	AuctionState(ctx context.Context, productID string) (AuctionState, error)
}

// CatalogClient reads auction state from the catalog service over HTTP.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient creates a catalog read client for the given base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// apiEnvelope matches the JSON response shape both services emit.
type apiEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// AuctionState fetches the live auction view for a product. A missing
// product maps to ErrProductNotFound; any transport or server failure maps
// to the retryable ErrUnavailable, never to a business rejection.
func (c *CatalogClient) AuctionState(ctx context.Context, productID string) (AuctionState, error) {
	url := fmt.Sprintf("%s/products/%s/auction", c.baseURL, productID)

	data, err := getJSON(ctx, c.client, url, "catalog service")
	if err != nil {
		return AuctionState{}, err
	}

	var state AuctionState
	if err := json.Unmarshal(data, &state); err != nil {
		return AuctionState{}, fmt.Errorf("decoding auction state for product %s: %v: %w",
			productID, err, auctionerrors.ErrUnavailable)
	}
	return state, nil
}

// getJSON performs a GET and unwraps the response envelope. 404 surfaces as
// ErrProductNotFound so callers can distinguish absence from unavailability.
func getJSON(ctx context.Context, client *http.Client, url, peer string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request to %s: %w", peer, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s unreachable: %v: %w", peer, err, auctionerrors.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", peer, auctionerrors.ErrProductNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s returned HTTP %d: %w", peer, resp.StatusCode, auctionerrors.ErrUnavailable)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding %s response: %v: %w", peer, err, auctionerrors.ErrUnavailable)
	}
	return envelope.Data, nil
}
