// Package ratelimit throttles registration attempts per phone number so a
// misbehaving client cannot hammer the provisioning pipeline.
package ratelimit

import (
	"context"
	"time"

	dErrors "sokoni/pkg/domain-errors"
)

// AttemptStore counts attempts per key within a rolling window.
type AttemptStore interface {
	// Incr bumps the counter for key and returns the new count. The first
	// increment in a window starts the window's expiry.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}

// Limiter enforces a max attempt count per phone per window.
type Limiter struct {
	store       AttemptStore
	maxAttempts int64
	window      time.Duration
}

func NewLimiter(store AttemptStore, maxAttempts int64, window time.Duration) *Limiter {
	return &Limiter{store: store, maxAttempts: maxAttempts, window: window}
}

// Allow records one attempt for phone and fails with CodeRateLimited when
// the window budget is exhausted.
func (l *Limiter) Allow(ctx context.Context, phone string) error {
	count, err := l.store.Incr(ctx, "reg:attempts:"+phone, l.window)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "count registration attempts")
	}
	if count > l.maxAttempts {
		return dErrors.Newf(dErrors.CodeRateLimited, "too many registration attempts for %s", phone)
	}
	return nil
}

// Clear forgets the attempts recorded for phone. Called after a successful
// registration.
func (l *Limiter) Clear(ctx context.Context, phone string) error {
	return l.store.Reset(ctx, "reg:attempts:"+phone)
}
