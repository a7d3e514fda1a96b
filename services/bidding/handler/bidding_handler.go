package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, productID, userID string, amount decimal.Decimal) (model.Bid, error)
	GetProductBids(productID string) ([]model.Bid, error)
	GetHighestBid(productID string) (model.Bid, error)
	GetWinner(ctx context.Context, productID string) (model.Bid, error)
	GetUserBids(userID string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

func bidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ProductID: bid.ProductID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		Status:    string(bid.Status),
	}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": req.ProductID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"user_id":    req.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetProductBidsHandler handles GET /products/:product_id/bids
func (h *BiddingHandler) GetProductBidsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.GetProductBids(productID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductBidsHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetProductBidsHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// GetHighestBidHandler handles GET /products/:product_id/bids/highest
func (h *BiddingHandler) GetHighestBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetHighestBid(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetHighestBidHandler: no leading bid", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(bid), "highest bid retrieved successfully")
}

// GetWinnerHandler handles GET /products/:product_id/winner
func (h *BiddingHandler) GetWinnerHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinner(c.Request.Context(), productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "auction ended with no bids")
			utils.Info("GetWinnerHandler: auction ended with no bids", map[string]any{"product_id": productID})
			return
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinnerHandler: winner error", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(bid), "winner retrieved successfully")
	helpers.LogSuccess("GetWinnerHandler", "winner retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"user_id":    bid.UserID,
	})
}

// GetUserBidsHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetUserBidsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.service.GetUserBids(userID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserBidsHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(bids),
	})
}
