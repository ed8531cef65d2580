// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package aggregate

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// popularActorCount is how many actors a popular-actors response carries.
const popularActorCount = 20

// PopularActors scans random pages of the catalog's popular-people listing
// and returns up to 20 working actors. Pages are drawn without replacement
// from [1, ceiling] so repeated calls surface different names; scanning
// stops once 20 candidates are collected or every page within the ceiling
// has been tried. Non-acting entries are dropped. When regionFiltered is
// set, each candidate's birthplace is checked against the configured home
// regions; candidates whose birthplace is unknown are excluded rather than
// given the benefit of the doubt.
func (s *Service) PopularActors(ctx context.Context, regionFiltered bool) ([]models.Person, error) {
	ceiling := s.cfg.PopularPageCeiling

	candidates := make([]models.Person, 0, popularActorCount)
	seen := make(map[int]struct{})
	tried := make(map[int]struct{}, ceiling)
	var firstErr error

	for len(candidates) < popularActorCount && len(tried) < ceiling {
		page := s.nextPage(tried, ceiling)
		tried[page] = struct{}{}

		result, err := s.client.GetPopularPeople(ctx, page)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			logging.Ctx(ctx).Warn().
				Err(err).
				Int("page", page).
				Msg("Popular page fetch failed")
			continue
		}

		batch := make([]models.Person, 0, len(result.Results))
		for _, p := range result.Results {
			if p.KnownForDepartment != "Acting" {
				continue
			}
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			batch = append(batch, models.Person{
				ID:                 p.ID,
				Name:               p.Name,
				ProfilePath:        p.ProfilePath,
				KnownForDepartment: p.KnownForDepartment,
				Popularity:         p.Popularity,
			})
		}
		if regionFiltered {
			batch = s.filterByHomeRegion(ctx, batch)
		}
		candidates = append(candidates, batch...)
	}

	// Failed pages are tolerable as long as something was collected.
	if len(candidates) == 0 {
		if firstErr != nil {
			return nil, fmt.Errorf("popular actors: %w", firstErr)
		}
		return nil, fmt.Errorf("popular actors: no acting candidates within %d pages", ceiling)
	}

	return s.sample(candidates, popularActorCount), nil
}

// nextPage picks a random page in [1, ceiling] not yet in tried. The caller
// guarantees at least one untried page remains.
func (s *Service) nextPage(tried map[int]struct{}, ceiling int) int {
	for {
		page := s.intn(ceiling) + 1
		if _, ok := tried[page]; !ok {
			return page
		}
	}
}

// filterByHomeRegion keeps candidates born in one of the configured home
// regions. Birthplaces come from per-person detail lookups, gathered
// concurrently; a candidate whose lookup fails or whose birthplace is
// missing is excluded.
func (s *Service) filterByHomeRegion(ctx context.Context, candidates []models.Person) []models.Person {
	birthplaces := make([]*string, len(candidates))
	tasks := make([]func(), len(candidates))
	for i, candidate := range candidates {
		i, candidate := i, candidate
		tasks[i] = func() {
			details, err := s.client.GetPerson(ctx, candidate.ID)
			if err != nil {
				logging.Ctx(ctx).Debug().
					Err(err).
					Int("person_id", candidate.ID).
					Msg("Birthplace lookup failed, excluding candidate")
				return
			}
			birthplaces[i] = details.PlaceOfBirth
		}
	}
	gatherAll(tasks)

	kept := make([]models.Person, 0, len(candidates))
	for i, candidate := range candidates {
		if birthplaces[i] == nil || *birthplaces[i] == "" {
			continue
		}
		if !s.isHomeRegion(*birthplaces[i]) {
			continue
		}
		candidate.PlaceOfBirth = *birthplaces[i]
		kept = append(kept, candidate)
	}
	return kept
}

// isHomeRegion reports whether a birthplace string names a home region.
func (s *Service) isHomeRegion(placeOfBirth string) bool {
	for _, region := range s.cfg.HomeRegions {
		if strings.Contains(placeOfBirth, region) {
			return true
		}
	}
	return false
}

// sample returns up to n candidates chosen uniformly without replacement.
// Fewer than n candidates are returned as-is (shuffled).
func (s *Service) sample(candidates []models.Person, n int) []models.Person {
	shuffled := make([]models.Person, len(candidates))
	copy(shuffled, candidates)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
