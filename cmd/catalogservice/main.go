package main

import (
	"fmt"
	"os"

	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/catalog/postgres"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/internal/server"
)

func main() {
	cfg := config.LoadCatalog()

	bus, err := eventbus.NewNATSBus(cfg.NATSURL, cfg.MaxDeliver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to event bus: %v\n", err)
		os.Exit(1)
	}
	defer bus.Close()

	repo, err := newRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open product repository: %v\n", err)
		os.Exit(1)
	}

	bidding := clients.NewBiddingClient(cfg.BiddingBaseURL)
	service := catalog.NewCatalogService(repo, bidding, bus)

	consumer := catalog.NewConsumer(service, bus)
	if err := consumer.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start consumers: %v\n", err)
		os.Exit(1)
	}
	defer consumer.Stop()

	router := server.SetupCatalogRouter(service)

	fmt.Printf("Starting catalog service on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newRepository picks PostgreSQL when DATABASE_URL is set, otherwise the
// in-memory store.
func newRepository(cfg config.CatalogConfig) (catalog.ProductRepository, error) {
	if cfg.DatabaseURL == "" {
		return catalog.NewMemoryRepository(), nil
	}
	return postgres.New(cfg.DatabaseURL)
}
