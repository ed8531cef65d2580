// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package aggregate assembles game-facing payloads from many paced catalog
// calls: actor filmographies with genre admission, full cast resolution
// including episode guest stars, popular-actor sampling, and target
// selection.
//
// Results that are expensive to assemble (filmographies, casts) are cached;
// the cache key includes every parameter that changes the payload, so
// distinct filters never collide.
package aggregate

import (
	"math/rand"
	"sync"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/cache"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/config"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/tmdb"
)

// Service aggregates catalog responses into game payloads.
type Service struct {
	client tmdb.API
	cache  *cache.Cache
	cfg    *config.GameConfig

	// randIntN is injectable for deterministic sampling tests.
	randIntN func(n int) int
	randMu   sync.Mutex
}

// NewService creates an aggregation service. The client must already be
// rate-limited (and circuit-broken when enabled).
func NewService(client tmdb.API, c *cache.Cache, cfg *config.GameConfig) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // sampling, not security
	return &Service{
		client:   client,
		cache:    c,
		cfg:      cfg,
		randIntN: rng.Intn,
	}
}

// intn returns a random int in [0, n) behind a mutex; rand.Rand itself is
// not safe for concurrent use.
func (s *Service) intn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.randIntN(n)
}

// gatherAll runs tasks concurrently and waits for every one to settle.
// Tasks write results into caller-owned index-addressed slices, so no
// channel plumbing is needed and failures never abort siblings.
func gatherAll(tasks []func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(task)
	}
	wg.Wait()
}
