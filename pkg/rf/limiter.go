package rf

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepFloor is the bucket count below which GetLimiter never sweeps.
const sweepFloor = 1024

type limiterEntry struct {
	limiter *rate.Limiter
	pinned  bool
}

// RateLimiterStore keeps one token bucket per key. The ingestor keys it by
// code value to fold a remote's repeated frames into one press; the gRPC
// server keys it by method.
//
// A bucket that has refilled to its burst behaves exactly like a new one, so
// idle default buckets are dropped once the store grows past sweepFloor.
// Buckets set through SetLimiter are kept.
type RateLimiterStore struct {
	limiters     map[string]*limiterEntry
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
	nextSweep    int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*limiterEntry),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
		nextSweep:    sweepFloor,
	}
}

func (s *RateLimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.limiters[key]
	if !exists {
		if len(s.limiters) >= s.nextSweep {
			s.sweepLocked(time.Now())
			s.nextSweep = max(2*len(s.limiters), sweepFloor)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(s.defaultRate, s.defaultBurst)}
		s.limiters[key] = entry
	}
	return entry.limiter
}

func (s *RateLimiterStore) SetLimiter(key string, keyRate rate.Limit, keyBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[key] = &limiterEntry{limiter: rate.NewLimiter(keyRate, keyBurst), pinned: true}
}

// Allow takes a token for key. A nil store allows everything.
func (s *RateLimiterStore) Allow(key string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(key).Allow()
}

// Forget drops the bucket for key, e.g. after the code was deleted.
func (s *RateLimiterStore) Forget(key string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.limiters, key)
}

// Sweep drops every default bucket that is full again at now and returns
// how many were removed.
func (s *RateLimiterStore) Sweep(now time.Time) int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

func (s *RateLimiterStore) sweepLocked(now time.Time) int {
	removed := 0
	for key, entry := range s.limiters {
		if entry.pinned {
			continue
		}
		if entry.limiter.TokensAt(now) >= float64(entry.limiter.Burst()) {
			delete(s.limiters, key)
			removed++
		}
	}
	return removed
}

// Len reports how many buckets are held.
func (s *RateLimiterStore) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
