package service

import (
	"context"
	"sync"
	"time"

	"teasr/internal/middleware"
	"teasr/internal/repository"
)

// ZeroRevenue is the display fallback pending the first successful fetch and
// after any fetch failure. Stale nonzero figures are never retained.
const ZeroRevenue = "0.00"

// RevenueService refreshes per-post revenue figures. Each displayed post gets
// its own poller; instances share no timing state.
type RevenueService struct {
	paymentRepo repository.PaymentRepository
	interval    time.Duration
}

// NewRevenueService returns a new RevenueService polling at the given
// interval.
func NewRevenueService(paymentRepo repository.PaymentRepository, interval time.Duration) *RevenueService {
	return &RevenueService{paymentRepo: paymentRepo, interval: interval}
}

// PostRevenue fetches the current revenue figure for a post. Fetch failures
// degrade to ZeroRevenue and are logged, never surfaced.
func (s *RevenueService) PostRevenue(ctx context.Context, postID uint) string {
	revenue, err := s.paymentRepo.PostRevenue(ctx, postID)
	if err != nil {
		middleware.RevenueFetchFailures.Inc()
		middleware.Logger.WarnContext(ctx, "Revenue fetch failed, falling back to zero",
			"post_id", postID,
			"error", err,
		)
		return ZeroRevenue
	}
	return revenue
}

// StartPolling fetches the post's revenue immediately, then on every interval
// tick, delivering each figure to onUpdate. The returned cancel func is
// idempotent and guaranteed-synchronous: once it returns, onUpdate will not
// be called again, even for a fetch already in flight.
func (s *RevenueService) StartPolling(ctx context.Context, postID uint, onUpdate func(revenue string)) (cancel func()) {
	var (
		mu      sync.Mutex
		stopped bool
		once    sync.Once
	)
	stop := make(chan struct{})

	// Delivery holds the mutex, so cancel blocks until an in-flight delivery
	// finishes and the stopped flag suppresses everything after.
	deliver := func(revenue string) {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		onUpdate(revenue)
	}

	go func() {
		deliver(s.PostRevenue(ctx, postID))

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver(s.PostRevenue(ctx, postID))
			}
		}
	}()

	return func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			close(stop)
		})
	}
}
