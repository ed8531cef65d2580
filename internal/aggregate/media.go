// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package aggregate

import (
	"context"
	"fmt"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/cache"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// MediaForPerson returns the filmography a player may pick from for the
// given actor, scoped by the media filter. Series credits pass the genre
// admission rules; film credits are returned as-is. The second return
// reports whether the payload came from the cache.
func (s *Service) MediaForPerson(ctx context.Context, personID int, filter models.MediaFilter) ([]models.MediaItem, bool, error) {
	key := cache.MediaKey(personID, filter)
	if cached, ok := s.cache.Get(key); ok {
		if items, ok := cached.([]models.MediaItem); ok {
			return items, true, nil
		}
	}

	items := make([]models.MediaItem, 0, 64)

	if filter.IncludesMovies() {
		credits, err := s.client.GetPersonMovieCredits(ctx, personID)
		if err != nil {
			return nil, false, fmt.Errorf("movie credits for person %d: %w", personID, err)
		}
		for _, c := range credits.Cast {
			items = append(items, models.MediaItem{
				Kind:        models.MediaKindMovie,
				ID:          c.ID,
				Title:       c.Title,
				ReleaseDate: c.ReleaseDate,
				PosterPath:  c.PosterPath,
			})
		}
	}

	if filter.IncludesTV() {
		credits, err := s.client.GetPersonTVCredits(ctx, personID)
		if err != nil {
			return nil, false, fmt.Errorf("tv credits for person %d: %w", personID, err)
		}
		tvItems := make([]models.MediaItem, 0, len(credits.Cast))
		for _, c := range credits.Cast {
			tvItems = append(tvItems, models.MediaItem{
				Kind:         models.MediaKindTV,
				ID:           c.ID,
				Name:         c.Name,
				FirstAirDate: c.FirstAirDate,
				PosterPath:   c.PosterPath,
				GenreIDs:     c.GenreIDs,
			})
		}
		items = append(items, s.admitTV(ctx, tvItems)...)
	}

	items = dedupeMedia(items)

	s.cache.Set(key, items)
	return items, false, nil
}

// SearchMedia searches the catalog by title, scoped by the media filter.
// Series results pass the same genre admission as filmographies. Search
// results are never cached; queries have too little reuse to be worth
// entries.
func (s *Service) SearchMedia(ctx context.Context, query string, filter models.MediaFilter) ([]models.MediaItem, error) {
	items := make([]models.MediaItem, 0, 40)

	if filter.IncludesMovies() {
		page, err := s.client.SearchMovies(ctx, query, 1)
		if err != nil {
			return nil, fmt.Errorf("movie search %q: %w", query, err)
		}
		for _, r := range page.Results {
			items = append(items, models.MediaItem{
				Kind:        models.MediaKindMovie,
				ID:          r.ID,
				Title:       r.Title,
				ReleaseDate: r.ReleaseDate,
				PosterPath:  r.PosterPath,
			})
		}
	}

	if filter.IncludesTV() {
		page, err := s.client.SearchTV(ctx, query, 1)
		if err != nil {
			return nil, fmt.Errorf("tv search %q: %w", query, err)
		}
		tvItems := make([]models.MediaItem, 0, len(page.Results))
		for _, r := range page.Results {
			tvItems = append(tvItems, models.MediaItem{
				Kind:         models.MediaKindTV,
				ID:           r.ID,
				Name:         r.Name,
				FirstAirDate: r.FirstAirDate,
				PosterPath:   r.PosterPath,
				GenreIDs:     r.GenreIDs,
			})
		}
		items = append(items, s.admitTV(ctx, tvItems)...)
	}

	return dedupeMedia(items), nil
}

// admitTV applies the series admission pipeline:
//  1. drop series on the fixed exclusion list
//  2. backfill missing genre lists from the detail endpoint (a series whose
//     backfill fails is dropped rather than admitted unvetted)
//  3. drop series carrying any excluded genre
//  4. keep only series carrying at least one allowed genre
//
// Exclusion always wins over inclusion. Backfills run concurrently; the
// rate limiter paces the actual requests.
func (s *Service) admitTV(ctx context.Context, items []models.MediaItem) []models.MediaItem {
	candidates := make([]models.MediaItem, 0, len(items))
	for _, item := range items {
		if models.IsExcludedTVShow(item.ID) {
			continue
		}
		candidates = append(candidates, item)
	}

	// Backfill genre lists that the parent response omitted.
	backfilled := make([][]int, len(candidates))
	failed := make([]bool, len(candidates))
	tasks := make([]func(), 0, len(candidates))
	for i := range candidates {
		if len(candidates[i].GenreIDs) > 0 {
			continue
		}
		i := i
		tasks = append(tasks, func() {
			details, err := s.client.GetTVDetails(ctx, candidates[i].ID)
			if err != nil {
				logging.Ctx(ctx).Warn().
					Err(err).
					Int("tv_id", candidates[i].ID).
					Msg("Genre backfill failed, dropping series")
				failed[i] = true
				return
			}
			backfilled[i] = details.GenreIDs()
		})
	}
	gatherAll(tasks)

	admitted := make([]models.MediaItem, 0, len(candidates))
	for i, item := range candidates {
		if failed[i] {
			continue
		}
		if len(item.GenreIDs) == 0 {
			item.GenreIDs = backfilled[i]
		}
		if models.HasExcludedTVGenre(item.GenreIDs) {
			continue
		}
		if !models.HasAllowedTVGenre(item.GenreIDs) {
			continue
		}
		admitted = append(admitted, item)
	}
	return admitted
}

// dedupeMedia keeps the first occurrence of each (kind, id) identity.
func dedupeMedia(items []models.MediaItem) []models.MediaItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		key := item.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
