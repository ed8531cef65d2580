// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package supervisor

import (
	"context"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
)

// defaultGCInterval is how often the snapshot store's value log is
// garbage-collected. Session snapshots are small and overwritten often, so
// an hourly pass keeps the log compact without measurable load.
const defaultGCInterval = time.Hour

// SnapshotGC is the subset of the session store the GC loop needs.
type SnapshotGC interface {
	RunGC() error
}

// GCService periodically garbage-collects the Badger-backed session
// snapshot store under supervision.
type GCService struct {
	store    SnapshotGC
	interval time.Duration
}

// NewGCService creates the supervised GC loop. A non-positive interval
// falls back to the hourly default.
func NewGCService(store SnapshotGC, interval time.Duration) *GCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &GCService{
		store:    store,
		interval: interval,
	}
}

// Serve implements suture.Service. GC failures are logged, not fatal; the
// next tick retries.
func (g *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.store.RunGC(); err != nil {
				logging.Warn().Err(err).Msg("Session store GC failed")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (g *GCService) String() string {
	return "snapshot-gc"
}
