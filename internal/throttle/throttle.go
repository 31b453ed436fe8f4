// Package throttle bounds repeated failed-login attempts per client to slow
// down credential stuffing. Counters live in a pluggable Store: the in-memory
// store suits a single instance, the Redis store a multi-instance deployment.
package throttle

import (
	"context"
	"errors"
)

// ErrTooManyAttempts is returned when a key has exhausted its failure budget
// for the current window.
var ErrTooManyAttempts = errors.New("too many failed attempts")

// Store tracks failed-attempt counts per key. Counts decay after the store's
// configured window. Implementations must serialize updates to a given key.
type Store interface {
	Failures(ctx context.Context, key string) (int, error)
	AddFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// Limiter gates an operation on the number of recorded failures for a key.
type Limiter struct {
	store Store
	max   int
}

// NewLimiter allows up to max failures per window before Allow starts
// rejecting.
func NewLimiter(store Store, max int) *Limiter {
	return &Limiter{store: store, max: max}
}

// Allow reports whether the key may attempt the guarded operation. It returns
// ErrTooManyAttempts once the failure budget is spent.
func (l *Limiter) Allow(ctx context.Context, key string) error {
	count, err := l.store.Failures(ctx, key)
	if err != nil {
		return err
	}
	if count >= l.max {
		return ErrTooManyAttempts
	}
	return nil
}

// RecordFailure counts one failed attempt against the key.
func (l *Limiter) RecordFailure(ctx context.Context, key string) error {
	return l.store.AddFailure(ctx, key)
}

// Reset clears the failure count for the key, typically after a successful
// attempt.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
