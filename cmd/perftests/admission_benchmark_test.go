package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/internal/ledger"
	model "auction-marketplace/internal/models"
)

// staticCatalog answers every auction state read with an active auction,
// keeping the benchmarks on the admission path rather than on HTTP.
type staticCatalog struct {
	price decimal.Decimal
}

func (s staticCatalog) AuctionState(ctx context.Context, productID string) (clients.AuctionState, error) {
	return clients.AuctionState{
		Status:       model.AuctionActive,
		SellerID:     "seller-bench",
		CurrentPrice: s.price,
	}, nil
}

func newBenchService() (*ledger.MemoryLedger, *bidding.AdmissionService) {
	led := ledger.NewMemoryLedger()
	svc := bidding.NewAdmissionService(led, staticCatalog{price: decimal.NewFromInt(50)}, eventbus.NoopPublisher{}, time.Hour)
	return led, svc
}

// Benchmark 1: PlaceBid - Isolated Products (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	_, svc := newBenchService()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		productID := fmt.Sprintf("product_%d", i)
		amount := decimal.NewFromInt(int64(51 + rand.Intn(100)))
		if _, err := svc.PlaceBid(context.Background(), productID, userID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Product (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedProduct(b *testing.B) {
	_, svc := newBenchService()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(context.Background(), "shared_product_1", userID, decimal.NewFromInt(nextBid))
		}
	})
}

// Benchmark 3: HighestBid - Single-Threaded (Low Contention)
func Benchmark_HighestBid_SingleThreaded(b *testing.B) {
	led, svc := newBenchService()

	for i := 0; i < b.N; i++ {
		productID := fmt.Sprintf("product_%d", i)
		for j := 0; j < 10; j++ {
			userID := fmt.Sprintf("user_%d_%d", i, j)
			amount := decimal.NewFromInt(int64(51 + j*10))
			_, _ = svc.PlaceBid(context.Background(), productID, userID, amount)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		productID := fmt.Sprintf("product_%d", i)
		if _, err := led.HighestBid(productID); err != nil {
			b.Fatalf("failed to get highest bid: %v", err)
		}
	}
}

// Benchmark 4: HighestBid - Concurrent (High Contention)
func Benchmark_HighestBid_ConcurrentSharedProduct(b *testing.B) {
	led, svc := newBenchService()

	for j := 0; j < 100; j++ {
		userID := fmt.Sprintf("user_%d", j)
		amount := decimal.NewFromInt(int64(51 + j))
		_, _ = svc.PlaceBid(context.Background(), "shared_product_1", userID, amount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := led.HighestBid("shared_product_1"); err != nil {
				b.Fatalf("failed to get highest bid: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedProduct(b *testing.B) {
	led, svc := newBenchService()

	for j := 0; j < 50; j++ {
		userID := fmt.Sprintf("user_seed_%d", j)
		amount := decimal.NewFromInt(int64(51 + j*2))
		_, _ = svc.PlaceBid(context.Background(), "shared_product_1", userID, amount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				userID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(context.Background(), "shared_product_1", userID, decimal.NewFromInt(nextBid))
			default:
				// Reader: get the leading bid
				_, _ = led.HighestBid("shared_product_1")
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
