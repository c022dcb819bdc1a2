package ratelimit

import "time"

// NoopRateLimiter always allows. Used when Redis is disabled in
// configuration, so the rest of the stack never branches on availability.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopRateLimiter) Reset(key string) error {
	return nil
}
