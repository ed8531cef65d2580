// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package ratelimit implements the fixed-window limiter that paces outbound
// catalog requests. The upstream enforces a hard requests-per-second cap;
// exceeding it returns 429s that would poison whole aggregations, so every
// catalog call must pass through Wait before touching the network.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/metrics"
)

// Limiter admits at most maxRequests request starts per window.
//
// The mutex is held across the sleep so callers are admitted in arrival
// order: a caller that hits a full window blocks everyone behind it until
// the window rolls over, which keeps admission FIFO and guarantees no
// window ever sees more than maxRequests starts.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	count       int
	windowStart time.Time

	// now and sleep are injectable for deterministic tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter admitting maxRequests starts per window.
func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

// Wait blocks until the caller may start a request, or until ctx is done.
// On success the caller's start is counted against the current window.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// Roll the window when it has fully elapsed.
	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.count = 0
	}

	if l.count >= l.maxRequests {
		// Window is full. Sleep to the end of the window, then open a
		// fresh one. The lock stays held so later arrivals queue behind.
		wait := l.window - now.Sub(l.windowStart)
		metrics.RecordRateLimitWait(wait)
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
		l.windowStart = l.now()
		l.count = 0
	}

	l.count++
	return nil
}

// Schedule waits for admission and then runs fn. It exists for call sites
// that want the pacing and the work expressed as one unit.
func (l *Limiter) Schedule(ctx context.Context, fn func() error) error {
	if err := l.Wait(ctx); err != nil {
		return err
	}
	return fn()
}

// sleepContext sleeps for d or returns early with ctx.Err().
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
