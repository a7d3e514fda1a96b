package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

func TestCatalogClient_AuctionState(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus model.AuctionStatus
	}{
		{
			name:       "active_auction",
			status:     http.StatusOK,
			body:       `{"status":200,"message":"ok","data":{"status":"active","seller_id":"seller1","current_price":"150"}}`,
			wantStatus: model.AuctionActive,
		},
		{
			name:    "product_missing",
			status:  http.StatusNotFound,
			body:    `{"status":404,"message":"product not found"}`,
			wantErr: auctionerrors.ErrProductNotFound,
		},
		{
			name:    "server_error_is_retryable",
			status:  http.StatusInternalServerError,
			body:    `{"status":500}`,
			wantErr: auctionerrors.ErrUnavailable,
		},
		{
			name:    "garbage_body_is_retryable",
			status:  http.StatusOK,
			body:    `{{{`,
			wantErr: auctionerrors.ErrUnavailable,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/products/prod1/auction", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewCatalogClient(srv.URL)
			state, err := client.AuctionState(context.Background(), "prod1")

			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, state.Status)
			require.Equal(t, "seller1", state.SellerID)
			require.True(t, state.CurrentPrice.Equal(decimal.NewFromInt(150)))
		})
	}
}

func TestCatalogClient_Unreachable(t *testing.T) {
	t.Parallel()

	// Nothing listens here.
	client := NewCatalogClient("http://127.0.0.1:1")
	_, err := client.AuctionState(context.Background(), "prod1")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrUnavailable))
}

func TestBiddingClient_HighestBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/prod1/bids/highest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"ok","data":{"bid_id":"bid1","product_id":"prod1","user_id":"user1","amount":"160","created_at":"` + now.Format(time.RFC3339) + `","status":"active"}}`))
	}))
	defer srv.Close()

	client := NewBiddingClient(srv.URL)
	bid, err := client.HighestBid(context.Background(), "prod1")
	require.NoError(t, err)
	require.Equal(t, "bid1", bid.BidID)
	require.Equal(t, "user1", bid.UserID)
	require.True(t, bid.Amount.Equal(decimal.NewFromInt(160)))
}

func TestBiddingClient_NoBidsMapsTo404(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"no bids found"}`))
	}))
	defer srv.Close()

	client := NewBiddingClient(srv.URL)
	_, err := client.HighestBid(context.Background(), "prod1")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrNoBids))
}
