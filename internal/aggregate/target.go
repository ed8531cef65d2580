// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package aggregate

import (
	"context"
	"fmt"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// TargetActor picks the actor a round is played toward: a random member of
// the popular-actor pool. When the pool cannot be assembled at all, the
// configured fallback actor is fetched directly so a round can always
// start.
func (s *Service) TargetActor(ctx context.Context, regionFiltered bool) (*models.Person, error) {
	candidates, err := s.PopularActors(ctx, regionFiltered)
	if err == nil && len(candidates) > 0 {
		target := candidates[s.intn(len(candidates))]
		return &target, nil
	}

	logging.Ctx(ctx).Warn().
		Err(err).
		Int("fallback_id", s.cfg.FallbackTargetID).
		Msg("Popular pool unavailable, using fallback target")

	details, fallbackErr := s.client.GetPerson(ctx, s.cfg.FallbackTargetID)
	if fallbackErr != nil {
		return nil, fmt.Errorf("fallback target %d: %w", s.cfg.FallbackTargetID, fallbackErr)
	}

	person := &models.Person{
		ID:                 details.ID,
		Name:               details.Name,
		ProfilePath:        details.ProfilePath,
		KnownForDepartment: details.KnownForDepartment,
		Popularity:         details.Popularity,
	}
	if details.PlaceOfBirth != nil {
		person.PlaceOfBirth = *details.PlaceOfBirth
	}
	return person, nil
}
