package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/catalog/helpers"
	"auction-marketplace/utils"
)

type CatalogServiceInterface interface {
	CreateProduct(ctx context.Context, sellerID, title, description string, startingPrice decimal.Decimal) (model.Product, error)
	GetProduct(productID string) (model.Product, error)
	StartAuction(ctx context.Context, productID string, startTime, endTime time.Time) (model.Product, error)
	EndAuction(ctx context.Context, productID string) (model.Product, error)
	CancelAuction(ctx context.Context, productID string) (model.Product, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req.SellerID, req.Title, req.Description, req.StartingPrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProductHandler: failed to create product", map[string]any{
			"handler":   "CreateProductHandler",
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, product, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  product.SellerID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// GetAuctionStateHandler handles GET /products/:product_id/auction
func (h *CatalogHandler) GetAuctionStateHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionStateHandler: error retrieving auction state", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	resp := helpers.AuctionStateResponse{
		Status:       string(product.Auction.Status),
		SellerID:     product.SellerID,
		CurrentPrice: product.CurrentPrice,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "auction state retrieved successfully")
}

// StartAuctionHandler handles POST /products/:product_id/auction/start
func (h *CatalogHandler) StartAuctionHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	startTime := time.Now().UTC()
	if req.StartTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			helpers.HandleBindError(c, "StartAuctionHandler", fmt.Errorf("start_time: %w", err))
			return
		}
		startTime = parsed
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", fmt.Errorf("end_time: %w", err))
		return
	}

	product, err := h.service.StartAuction(c.Request.Context(), productID, startTime, endTime)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartAuctionHandler: failed to start auction", map[string]any{
			"handler":    "StartAuctionHandler",
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"product_id": productID,
	})
}

// EndAuctionHandler handles POST /products/:product_id/auction/end
func (h *CatalogHandler) EndAuctionHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.EndAuction(c.Request.Context(), productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EndAuctionHandler: failed to end auction", map[string]any{
			"handler":    "EndAuctionHandler",
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction ended successfully", map[string]any{
		"product_id": productID,
		"winner_id":  product.Auction.WinnerID,
	})
}

// CancelAuctionHandler handles POST /products/:product_id/auction/cancel
func (h *CatalogHandler) CancelAuctionHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.CancelAuction(c.Request.Context(), productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelAuctionHandler: failed to cancel auction", map[string]any{
			"handler":    "CancelAuctionHandler",
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"product_id": productID,
	})
}
