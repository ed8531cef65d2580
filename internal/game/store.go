// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package game

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// ErrSessionNotFound marks a snapshot lookup for an unknown session ID.
var ErrSessionNotFound = errors.New("session not found")

// snapshotKeyPrefix namespaces session snapshots inside the badger keyspace.
const snapshotKeyPrefix = "session:"

// Store persists session state snapshots in badger. Every dispatched event
// re-snapshots the session, so a restarted server (or a rejoining client)
// can rehydrate mid-round.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the snapshot store. With inMemory set the
// store lives purely in RAM, which is what tests and ephemeral deployments
// use.
func OpenStore(dir string, inMemory bool) (*Store, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	// Badger's default logger prints straight to stderr outside our
	// structured stream.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return &Store{db: db}, nil
}

func snapshotKey(id string) []byte {
	return []byte(snapshotKeyPrefix + id)
}

// Save snapshots a session's state as JSON.
func (s *Store) Save(id string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(id), payload)
	})
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

// Load rehydrates a session's state. TimerRunning is always forced false:
// a persisted session never resumes a live countdown on its own; the
// player must explicitly resume.
func (s *Store) Load(id string) (State, error) {
	var state State
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return State{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	state.TimerRunning = false
	return state, nil
}

// Delete removes a session's snapshot. Unknown IDs are not an error.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(snapshotKey(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// RunGC runs one round of badger value-log garbage collection. Callers
// schedule it periodically; badger.ErrNoRewrite (nothing to collect) is
// reported as nil.
func (s *Store) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
