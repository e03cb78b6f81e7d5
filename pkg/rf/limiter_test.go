package rf

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("1361")
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter("/rfhub.RFHub/IngestCode", 5, 10)
	limiter := store.GetLimiter("/rfhub.RFHub/IngestCode")

	if limiter.Limit() != 5 {
		t.Errorf("expected limit 5, got %v", limiter.Limit())
	}
	if limiter.Burst() != 10 {
		t.Errorf("expected burst 10, got %v", limiter.Burst())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	code := uuid.NewString()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Allow(code)
		}()
	}
	wg.Wait()

	if store.GetLimiter(code) == nil {
		t.Error("expected limiter to exist after concurrent access")
	}
}

func TestRateLimiterStore_SuppressesRepeats(t *testing.T) {
	store := NewRateLimiterStore(rate.Every(time.Hour), 1)

	if !store.Allow("1361") {
		t.Fatal("expected first press to pass")
	}
	if store.Allow("1361") {
		t.Error("expected repeat to be suppressed")
	}
	if !store.Allow("1364") {
		t.Error("expected other code to pass")
	}

	store.Forget("1361")
	if !store.Allow("1361") {
		t.Error("expected forgotten code to pass again")
	}
}

func TestRateLimiterStore_NilAllowsAll(t *testing.T) {
	var store *RateLimiterStore
	for range 3 {
		if !store.Allow("1361") {
			t.Fatal("expected nil store to allow")
		}
	}
	store.Forget("1361")
}

func TestRateLimiterStore_SweepDropsRefilledBuckets(t *testing.T) {
	store := NewRateLimiterStore(rate.Every(time.Millisecond), 1)

	for i := range 5000 {
		store.Allow(strconv.Itoa(i))
	}
	store.SetLimiter("/rfhub.RFHub/IngestCode", 5, 10)

	store.Sweep(time.Now().Add(time.Second))
	if store.Len() != 1 {
		t.Errorf("expected only the pinned bucket left, got %d", store.Len())
	}
}

func TestRateLimiterStore_SweepKeepsDrainedBuckets(t *testing.T) {
	store := NewRateLimiterStore(rate.Every(time.Hour), 1)

	store.Allow("1361")
	store.GetLimiter("1364")

	if removed := store.Sweep(time.Now()); removed != 1 {
		t.Errorf("expected only the untouched bucket swept, got %d", removed)
	}
	if store.Allow("1361") {
		t.Error("expected drained bucket to survive the sweep")
	}
}

func TestRateLimiterStore_GrowthIsBounded(t *testing.T) {
	store := NewRateLimiterStore(rate.Inf, 1)

	for i := range 5000 {
		store.Allow(strconv.Itoa(i))
	}

	if store.Len() > sweepFloor {
		t.Errorf("expected at most %d buckets held, got %d", sweepFloor, store.Len())
	}
}
