// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package game

import (
	"context"
	"sync"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/metrics"
)

// defaultTickInterval is the countdown granularity: one engine tick per
// second of game time.
const defaultTickInterval = time.Second

// Session owns one player's state. All event dispatch is serialized under
// a mutex; the countdown runs as a single cancellable goroutine that is
// torn down whenever a transition leaves the timer stopped, so duplicate
// concurrent timers (and double decrements) are impossible.
type Session struct {
	ID string

	mu           sync.Mutex
	state        State
	store        *Store
	tickInterval time.Duration
	tickCancel   context.CancelFunc
}

// newSession builds a session around a fresh or rehydrated state. store
// may be nil in tests.
func newSession(id string, state State, store *Store, tickInterval time.Duration) *Session {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	return &Session{
		ID:           id,
		state:        state,
		store:        store,
		tickInterval: tickInterval,
	}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an event, persists the resulting state, and reconciles
// the timer goroutine with the new state. The returned state is the state
// after the event.
func (s *Session) Dispatch(event Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state
	s.state = Transition(s.state, event)

	s.reconcileTimerLocked()
	s.snapshotLocked()

	if !before.Status.Terminal() && s.state.Status.Terminal() {
		metrics.RecordGameOutcome(string(s.state.Status))
	}

	return s.state
}

// reconcileTimerLocked starts or stops the tick goroutine so exactly one
// runs while (and only while) the timer is running. Must be called with
// s.mu held.
func (s *Session) reconcileTimerLocked() {
	running := s.state.Status == StatusInProgress && s.state.TimerRunning

	switch {
	case running && s.tickCancel == nil:
		ctx, cancel := context.WithCancel(context.Background())
		s.tickCancel = cancel
		go s.runTicker(ctx)
	case !running && s.tickCancel != nil:
		s.tickCancel()
		s.tickCancel = nil
	}
}

// runTicker dispatches one tick per interval until cancelled. Ticks that
// land after the timer stopped are no-ops in the engine.
func (s *Session) runTicker(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Dispatch(Event{Type: EventTick})
		}
	}
}

// snapshot persists the current state under the session lock.
func (s *Session) snapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotLocked()
}

// snapshotLocked persists the current state best-effort. A failed snapshot
// never fails the dispatch; the in-memory state stays authoritative.
func (s *Session) snapshotLocked() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.ID, s.state); err != nil {
		logging.Error().
			Err(err).
			Str("session_id", s.ID).
			Msg("Session snapshot failed")
	}
}

// Close tears down the timer goroutine and writes a final snapshot.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tickCancel != nil {
		s.tickCancel()
		s.tickCancel = nil
	}
	s.state.TimerRunning = false
	s.snapshotLocked()
}
