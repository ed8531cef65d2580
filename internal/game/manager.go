// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/metrics"
)

// Manager is the registry of live sessions. Sessions absent from the
// registry (after a restart) are rehydrated from the snapshot store on
// lookup.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    *Store
}

// NewManager creates a session registry backed by the given snapshot
// store. store may be nil, in which case sessions are memory-only.
func NewManager(store *Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Create starts a new session with the given settings and returns it.
func (m *Manager) Create(settings Settings) *Session {
	id := uuid.New().String()
	session := newSession(id, NewState(settings), m.store, defaultTickInterval)

	m.mu.Lock()
	m.sessions[id] = session
	total := len(m.sessions)
	m.mu.Unlock()

	session.snapshot()
	metrics.SessionsCreated.Inc()
	metrics.SessionsActive.Set(float64(total))
	return session
}

// Get returns the live session for id, rehydrating from the snapshot
// store when the process has restarted since the session was created.
// Returns ErrSessionNotFound (wrapped) for unknown IDs.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return session, nil
	}

	if m.store == nil {
		return nil, ErrSessionNotFound
	}
	state, err := m.store.Load(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have rehydrated concurrently; keep the winner.
	if existing, ok := m.sessions[id]; ok {
		return existing, nil
	}
	session = newSession(id, state, m.store, defaultTickInterval)
	m.sessions[id] = session
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	return session, nil
}

// Count returns the number of live sessions in the registry.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Remove closes a session and drops it from the registry and the store.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	total := len(m.sessions)
	m.mu.Unlock()

	if ok {
		session.Close()
	}
	if m.store != nil {
		_ = m.store.Delete(id)
	}
	metrics.SessionsActive.Set(float64(total))
}

// Close tears down every live session (final snapshots included).
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	metrics.SessionsActive.Set(0)
}
