package ctxutil

import (
	"context"
	"sync/atomic"
)

type ctxKey string

const (
	requestIDKey    ctxKey = "request_id"
	cacheOutcomeKey ctxKey = "cache_outcome"
)

// Cache outcomes recorded by the resolver.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCacheOutcome installs an empty cache-outcome slot in the context.
// Code further down the call chain fills it with SetCacheOutcome and the
// installer reads it back after the call returns.
func WithCacheOutcome(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheOutcomeKey, new(atomic.Value))
}

// SetCacheOutcome records outcome in the slot installed by WithCacheOutcome.
// It is a no-op when no slot is present.
func SetCacheOutcome(ctx context.Context, outcome string) {
	if slot, ok := ctx.Value(cacheOutcomeKey).(*atomic.Value); ok {
		slot.Store(outcome)
	}
}

// CacheOutcomeFromCtx returns the recorded cache outcome, or "" when none was set.
func CacheOutcomeFromCtx(ctx context.Context) string {
	slot, ok := ctx.Value(cacheOutcomeKey).(*atomic.Value)
	if !ok {
		return ""
	}
	outcome, _ := slot.Load().(string)
	return outcome
}
