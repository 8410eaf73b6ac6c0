package config

import "time"

// RateLimitConfig is the token bucket configuration of the API rate limiter
type RateLimitConfig struct {
	Rate     int           // Tokens refilled per interval
	Burst    int           // Bucket capacity
	Interval time.Duration // Refill interval
}

// LoginRateLimitConfig is tighter than the API-wide limiter to slow down password guessing
var LoginRateLimitConfig = RateLimitConfig{
	Rate:     5,
	Burst:    10,
	Interval: time.Minute,
}

// APIRateLimitConfig builds the API-wide limiter settings from Env
func APIRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Rate:     Env.RateLimitRate,
		Burst:    Env.RateLimitBurst,
		Interval: time.Minute,
	}
}
