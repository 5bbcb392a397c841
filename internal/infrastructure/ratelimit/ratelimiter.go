// Package ratelimit provides request rate limiting for public endpoints.
package ratelimit

import "context"

// RateLimiter reports whether the caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
