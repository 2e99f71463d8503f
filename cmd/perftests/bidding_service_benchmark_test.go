package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// Benchmark 1: PlaceBid - Isolated Items (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	f, err := newFixture(b.N, 64)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidder := f.bidders[i%len(f.bidders)]
		itemID := fmt.Sprintf("item_%d", i)
		bidAmount := float64(50 + rand.Intn(100))
		if _, err := f.svc.PlaceBid(ctx, itemID, bidder, bidAmount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Item (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedItem(b *testing.B) {
	f, err := newFixture(1, 256)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50
	var accepted, outbid int64

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := f.bidders[rnd.Intn(len(f.bidders))]
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			if _, err := f.svc.PlaceBid(ctx, "item_0", bidder, float64(nextBid)); err != nil {
				atomic.AddInt64(&outbid, 1)
				continue
			}
			atomic.AddInt64(&accepted, 1)
		}
	})
	b.ReportMetric(float64(accepted), "accepted")
	b.ReportMetric(float64(outbid), "refused")
}

// Benchmark 3: GetWinningBid - Single - Threaded (Low Contention)
func Benchmark_GetWinningBid_SingleThreaded(b *testing.B) {
	f, err := newFixture(b.N, 10)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		itemID := fmt.Sprintf("item_%d", i)
		for j, bidder := range f.bidders {
			_, _ = f.svc.PlaceBid(ctx, itemID, bidder, float64(50+j*10))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		itemID := fmt.Sprintf("item_%d", i)
		if _, err := f.svc.GetWinningBid(ctx, itemID); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - Concurrent (High Contention)
func Benchmark_GetWinningBid_ConcurrentSharedItem(b *testing.B) {
	f, err := newFixture(1, 100)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()
	for j, bidder := range f.bidders {
		_, _ = f.svc.PlaceBid(ctx, "item_0", bidder, float64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := f.svc.GetWinningBid(ctx, "item_0"); err != nil {
				b.Errorf("failed to get winning bid: %v", err)
				return
			}
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedItem(b *testing.B) {
	f, err := newFixture(1, 128)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()
	for j := 0; j < 50; j++ {
		_, _ = f.svc.PlaceBid(ctx, "item_0", f.bidders[j], float64(50+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				bidder := f.bidders[rnd.Intn(len(f.bidders))]
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = f.svc.PlaceBid(ctx, "item_0", bidder, float64(nextBid))
				continue
			}
			_, _ = f.svc.GetWinningBid(ctx, "item_0")
		}
	})
}

// Benchmark 6: CloseAuction over many bids
func Benchmark_CloseAuction(b *testing.B) {
	f, err := newFixture(b.N, 20)
	if err != nil {
		b.Fatalf("failed to set up fixture: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		itemID := fmt.Sprintf("item_%d", i)
		for j, bidder := range f.bidders {
			_, _ = f.svc.PlaceBid(ctx, itemID, bidder, float64(50+j))
		}
	}
	// every item expires once the deadlines are pulled into the past
	for i := 0; i < b.N; i++ {
		it := item(fmt.Sprintf("item_%d", i), 50)
		it.Deadline = time.Now().UTC().Add(-time.Second)
		it.HighestBid = 50 + float64(len(f.bidders)-1)
		it.TotalBids = len(f.bidders)
		f.repo.AddItem(it)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := f.svc.CloseAuction(ctx, fmt.Sprintf("item_%d", i)); err != nil {
			b.Fatalf("failed to close auction: %v", err)
		}
	}
}
