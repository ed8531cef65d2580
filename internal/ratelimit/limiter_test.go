// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock drives the limiter deterministically: sleep advances virtual
// time instead of blocking.
type fakeClock struct {
	current time.Time
	slept   time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Unix(1700000000, 0)}
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) sleep(_ context.Context, d time.Duration) error {
	f.current = f.current.Add(d)
	f.slept += d
	return nil
}

func newTestLimiter(max int, window time.Duration) (*Limiter, *fakeClock) {
	clock := newFakeClock()
	l := New(max, window)
	l.now = clock.now
	l.sleep = clock.sleep
	return l, clock
}

func TestBurstWithinBudget(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}

	if clock.slept != 0 {
		t.Errorf("first 3 requests should not sleep, slept %s", clock.slept)
	}
}

func TestFourthRequestDelayedToWindowEnd(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}

	// Advance partway into the window; the fourth request must be delayed
	// only to the end of the window, not a full second.
	clock.current = clock.current.Add(400 * time.Millisecond)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	if clock.slept != 600*time.Millisecond {
		t.Errorf("expected 600ms delay to window end, slept %s", clock.slept)
	}
}

func TestWindowResetAfterExpiry(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}

	// A request arriving after the window elapsed starts a fresh window
	// and is admitted immediately.
	clock.current = clock.current.Add(1500 * time.Millisecond)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	if clock.slept != 0 {
		t.Errorf("request after window expiry should not sleep, slept %s", clock.slept)
	}
}

func TestTenRequestsSpanThreeSeconds(t *testing.T) {
	l, clock := newTestLimiter(3, time.Second)
	start := clock.current

	for i := 0; i < 10; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() %d failed: %v", i, err)
		}
	}

	// 10 starts at 3 per window require at least 3 full windows to open.
	elapsed := clock.current.Sub(start)
	if elapsed < 3*time.Second {
		t.Errorf("10 requests at 3/s must take at least 3s, took %s", elapsed)
	}

	// No virtual second should ever admit more than 3 starts; with the
	// fake clock the total is exactly the three rollover sleeps.
	if clock.slept != 3*time.Second {
		t.Errorf("expected exactly 3s of accumulated delay, got %s", clock.slept)
	}
}

func TestWaitContextCancelled(t *testing.T) {
	l, _ := newTestLimiter(3, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWaitSleepInterrupted(t *testing.T) {
	l, clock := newTestLimiter(1, time.Second)

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	sleepErr := context.DeadlineExceeded
	l.sleep = func(_ context.Context, d time.Duration) error {
		clock.current = clock.current.Add(d)
		return sleepErr
	}

	if err := l.Wait(context.Background()); !errors.Is(err, sleepErr) {
		t.Errorf("expected sleep error to propagate, got %v", err)
	}
}

func TestSchedule(t *testing.T) {
	l, _ := newTestLimiter(3, time.Second)

	ran := false
	err := l.Schedule(context.Background(), func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}
	if !ran {
		t.Error("scheduled function did not run")
	}

	// fn errors pass through unchanged.
	want := errors.New("boom")
	if err := l.Schedule(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Errorf("expected fn error, got %v", err)
	}
}

func TestScheduleSkipsFnWhenCancelled(t *testing.T) {
	l, _ := newTestLimiter(3, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := l.Schedule(ctx, func() error {
		ran = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ran {
		t.Error("fn must not run when admission fails")
	}
}
