package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"teasr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRevenueRepo(revenue string, err error) *paymentRepoStub {
	return &paymentRepoStub{
		postRevenueFn: func(context.Context, uint) (string, error) {
			return revenue, err
		},
	}
}

func TestRevenueServicePostRevenueFallsBackToZero(t *testing.T) {
	svc := NewRevenueService(fixedRevenueRepo("", models.NewInternalError(errors.New("db down"))), time.Second)
	assert.Equal(t, ZeroRevenue, svc.PostRevenue(context.Background(), 1))

	svc = NewRevenueService(fixedRevenueRepo("12.75", nil), time.Second)
	assert.Equal(t, "12.75", svc.PostRevenue(context.Background(), 1))
}

func TestRevenuePollerFetchesImmediately(t *testing.T) {
	svc := NewRevenueService(fixedRevenueRepo("4.25", nil), time.Hour)

	updates := make(chan string, 1)
	cancel := svc.StartPolling(context.Background(), 1, func(revenue string) {
		updates <- revenue
	})
	defer cancel()

	select {
	case got := <-updates:
		assert.Equal(t, "4.25", got)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate fetch before the first tick")
	}
}

func TestRevenuePollerRefetchesOnInterval(t *testing.T) {
	var fetches atomic.Int32
	repo := &paymentRepoStub{
		postRevenueFn: func(context.Context, uint) (string, error) {
			fetches.Add(1)
			return "1.00", nil
		},
	}
	svc := NewRevenueService(repo, 10*time.Millisecond)

	updates := make(chan string, 16)
	cancel := svc.StartPolling(context.Background(), 1, func(revenue string) {
		updates <- revenue
	})
	defer cancel()

	deadline := time.After(2 * time.Second)
	for received := 0; received < 3; {
		select {
		case <-updates:
			received++
		case <-deadline:
			t.Fatalf("expected at least 3 updates, got %d (fetches: %d)", received, fetches.Load())
		}
	}
}

func TestRevenuePollerCancellationIsSynchronous(t *testing.T) {
	release := make(chan struct{})
	inFlight := make(chan struct{})
	repo := &paymentRepoStub{
		postRevenueFn: func(context.Context, uint) (string, error) {
			close(inFlight)
			<-release
			return "9.99", nil
		},
	}
	svc := NewRevenueService(repo, time.Hour)

	var delivered atomic.Int32
	cancel := svc.StartPolling(context.Background(), 1, func(string) {
		delivered.Add(1)
	})

	// Cancel while the first fetch is still in flight, then let it resolve.
	<-inFlight
	cancel()
	close(release)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), delivered.Load(), "an in-flight fetch resolving after cancel must be discarded")
}

func TestRevenuePollerCancelIsIdempotent(t *testing.T) {
	svc := NewRevenueService(fixedRevenueRepo("1.00", nil), time.Hour)

	cancel := svc.StartPolling(context.Background(), 1, func(string) {})
	cancel()
	cancel()
}

func TestRevenuePollerInstancesAreIndependent(t *testing.T) {
	var fetched sync.Map
	repo := &paymentRepoStub{
		postRevenueFn: func(_ context.Context, postID uint) (string, error) {
			fetched.Store(postID, true)
			return "1.00", nil
		},
	}
	svc := NewRevenueService(repo, time.Hour)

	first := make(chan string, 1)
	second := make(chan string, 1)
	cancelFirst := svc.StartPolling(context.Background(), 1, func(r string) { first <- r })
	cancelSecond := svc.StartPolling(context.Background(), 2, func(r string) { second <- r })

	// Cancelling one poller must not silence the other.
	cancelFirst()
	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("second poller should keep delivering after the first is cancelled")
	}
	cancelSecond()

	_, ok := fetched.Load(uint(2))
	require.True(t, ok)
}
