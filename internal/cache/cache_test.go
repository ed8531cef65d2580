// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "value" {
		t.Errorf("expected value, got %v", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected cache miss for absent key")
	}
}

func TestLazyExpiry(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", "value")

	// Just before expiry the entry is still served.
	c.now = func() time.Time { return base.Add(time.Hour - time.Second) }
	if _, ok := c.Get("key"); !ok {
		t.Error("expected hit before expiry")
	}

	// Past expiry the entry is a miss even though the janitor has not run.
	c.now = func() time.Time { return base.Add(time.Hour + time.Second) }
	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after expiry")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestSetRefreshesExpiry(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", "old")

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	c.Set("key", "new")

	// 90 minutes after the first write but within the second write's TTL.
	c.now = func() time.Time { return base.Add(90 * time.Minute) }
	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit, Set should refresh expiry")
	}
	if got != "new" {
		t.Errorf("expected refreshed value, got %v", got)
	}
}

func TestDelete(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	c.Set("key", "value")
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after delete")
	}
}

func TestClear(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after clear")
	}
	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("expected 0 keys after clear, got %d", stats.TotalKeys)
	}
}

func TestCleanup(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("expired", 1)
	c.SetWithTTL("fresh", 2, 3*time.Hour)

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("expected 1 key after cleanup, got %d", stats.TotalKeys)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive cleanup")
	}
}

func TestHitRate(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	if c.HitRate() != 0.0 {
		t.Error("expected 0 hit rate for empty cache")
	}

	c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("missing")
	c.Get("missing")

	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("expected 50%% hit rate, got %.2f", rate)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set(MediaKey(n, models.FilterAllMedia), j)
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Get(MediaKey(n, models.FilterAllMedia))
			}
		}(i)
	}
	wg.Wait()
}

func TestMediaKey(t *testing.T) {
	key := MediaKey(31, models.FilterMoviesOnly)
	if key != "media:31:MOVIES_ONLY" {
		t.Errorf("unexpected media key: %s", key)
	}

	// Distinct filters must not collide.
	if MediaKey(31, models.FilterAllMedia) == MediaKey(31, models.FilterTVOnly) {
		t.Error("filters should produce distinct keys")
	}
}

func TestCastKey(t *testing.T) {
	if key := CastKey(models.MediaKindMovie, 603); key != "cast:movie:603" {
		t.Errorf("unexpected cast key: %s", key)
	}
	// Movie and series ID spaces are independent; kinds must not collide.
	if CastKey(models.MediaKindMovie, 603) == CastKey(models.MediaKindTV, 603) {
		t.Error("kinds should produce distinct keys")
	}
}
