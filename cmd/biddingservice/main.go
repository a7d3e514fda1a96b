package main

import (
	"fmt"
	"os"
	"time"

	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/internal/ledger"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
)

func main() {
	cfg := config.LoadBidding()

	bus, err := eventbus.NewNATSBus(cfg.NATSURL, cfg.MaxDeliver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to event bus: %v\n", err)
		os.Exit(1)
	}
	defer bus.Close()

	led := ledger.NewMemoryLedger()
	catalog := clients.NewCatalogClient(cfg.CatalogBaseURL)
	service := bidding.NewAdmissionService(led, catalog, bus, cfg.BidRetention)

	consumer := bidding.NewConsumer(service, bus)
	if err := consumer.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start consumers: %v\n", err)
		os.Exit(1)
	}
	defer consumer.Stop()

	go purgeLoop(led)

	router := server.SetupBiddingRouter(service)

	fmt.Printf("Starting bidding service on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// purgeLoop periodically drops bid data whose retention window has passed
func purgeLoop(led *ledger.MemoryLedger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for now := range ticker.C {
		if purged := led.PurgeExpired(now); purged > 0 {
			utils.Info("purged expired bid data", map[string]any{"products": purged})
		}
	}
}
