package grpc

import (
	"golang.org/x/time/rate"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
)

type RFServer struct {
	RF *rf.RF
	// RateLimiterStore is keyed by full method name.
	RateLimiterStore *rf.RateLimiterStore
}

var _ RFHubServer = (*RFServer)(nil)

func (s *RFServer) GetLimiter(method string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	}
	return s.RateLimiterStore.GetLimiter(method)
}

func (s *RFServer) CheckMethodLimiter(method string) bool {
	limiter := s.GetLimiter(method)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
