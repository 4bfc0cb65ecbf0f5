// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpx

import (
	"sync"

	"golang.org/x/time/rate"
)

// sourceLimit holds the refill rate (tokens/second) and burst capacity for
// one recognized source key.
type sourceLimit struct {
	rate rate.Limit
	burst int
}

// defaultSourceLimits are the recognized source keys and their (r, c).
var defaultSourceLimits = map[string]sourceLimit{
	"openalex": {rate: 10, burst: 10},
	"s2":       {rate: 1, burst: 1},
	"openai":   {rate: 5, burst: 5},
	"ollama":   {rate: 100, burst: 100},
}

// fallbackSourceLimit applies to any source key not in defaultSourceLimits.
var fallbackSourceLimit = sourceLimit{rate: 5, burst: 5}

// limiterSet holds one token bucket per source key, created lazily and
// shared across the process per the transport's singleton lifecycle.
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterSet() *limiterSet {
	return &limiterSet{limiters: make(map[string]*rate.Limiter)}
}

func (s *limiterSet) forSource(source string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.limiters[source]; ok {
		return l
	}

	lim, ok := defaultSourceLimits[source]
	if !ok {
		lim = fallbackSourceLimit
	}

	l := rate.NewLimiter(lim.rate, lim.burst)
	s.limiters[source] = l
	return l
}
