package server

import (
	"github.com/gin-gonic/gin"

	"auction-marketplace/internal/metrics"
	biddinghandler "auction-marketplace/services/bidding/handler"
	cataloghandler "auction-marketplace/services/catalog/handler"
)

// SetupBiddingRouter configures all Gin routes for the bidding service
func SetupBiddingRouter(service biddinghandler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	h := biddinghandler.NewBiddingHandler(service)

	bids := router.Group("/bids")
	{
		bids.POST("", h.PlaceBidHandler)
	}

	products := router.Group("/products")
	{
		products.GET("/:product_id/bids", h.GetProductBidsHandler)
		products.GET("/:product_id/bids/highest", h.GetHighestBidHandler)
		products.GET("/:product_id/winner", h.GetWinnerHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", h.GetUserBidsHandler)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

// SetupCatalogRouter configures all Gin routes for the catalog service
func SetupCatalogRouter(service cataloghandler.CatalogServiceInterface) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	h := cataloghandler.NewCatalogHandler(service)

	products := router.Group("/products")
	{
		products.POST("", h.CreateProductHandler)
		products.GET("/:product_id", h.GetProductHandler)
		products.GET("/:product_id/auction", h.GetAuctionStateHandler)
		products.POST("/:product_id/auction/start", h.StartAuctionHandler)
		products.POST("/:product_id/auction/end", h.EndAuctionHandler)
		products.POST("/:product_id/auction/cancel", h.CancelAuctionHandler)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
