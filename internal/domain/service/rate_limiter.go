package service

import "context"

// RateLimiter decides whether a keyed request fits the bucket's budget.
type RateLimiter interface {
	Allow(ctx context.Context, bucket, key string) (bool, error)
}
