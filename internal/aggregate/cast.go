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
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/tmdb"
)

// maxImagesPerPerson caps the profile gallery attached to film cast members.
const maxImagesPerPerson = 4

// Cast resolves every performer of a media item. For films this is the
// billed cast enriched with profile image galleries. For series it is the
// main billed cast plus every episode-level performer and guest star across
// all seasons, so one-episode appearances still connect actors. The second
// return reports whether the payload came from the cache.
func (s *Service) Cast(ctx context.Context, kind models.MediaKind, id int) ([]models.Person, bool, error) {
	key := cache.CastKey(kind, id)
	if cached, ok := s.cache.Get(key); ok {
		if people, ok := cached.([]models.Person); ok {
			return people, true, nil
		}
	}

	var (
		people []models.Person
		err    error
	)
	switch kind {
	case models.MediaKindMovie:
		people, err = s.movieCast(ctx, id)
	case models.MediaKindTV:
		people, err = s.tvCast(ctx, id)
	default:
		return nil, false, fmt.Errorf("unknown media kind %q", kind)
	}
	if err != nil {
		return nil, false, err
	}

	s.cache.Set(key, people)
	return people, false, nil
}

// movieCast returns a film's billed cast with best-effort image galleries.
// A failed gallery lookup leaves Images empty; it never fails the cast.
func (s *Service) movieCast(ctx context.Context, movieID int) ([]models.Person, error) {
	credits, err := s.client.GetMovieCredits(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("movie credits for %d: %w", movieID, err)
	}

	people := make([]models.Person, len(credits.Cast))
	tasks := make([]func(), len(credits.Cast))
	for i, member := range credits.Cast {
		i, member := i, member
		tasks[i] = func() {
			people[i] = personFromCastMember(member)
			images, err := s.client.GetPersonImages(ctx, member.ID)
			if err != nil {
				logging.Ctx(ctx).Debug().
					Err(err).
					Int("person_id", member.ID).
					Msg("Image gallery lookup failed")
				return
			}
			people[i].Images = imagePaths(images, maxImagesPerPerson)
		}
	}
	gatherAll(tasks)

	return dedupePeople(people), nil
}

// tvCast returns a series' complete cast: main billing first, then every
// episode performer and guest star in season/episode order. Main-cast
// entries take precedence in deduplication, so a lead never shows up as a
// guest.
func (s *Service) tvCast(ctx context.Context, tvID int) ([]models.Person, error) {
	credits, err := s.client.GetTVCredits(ctx, tvID)
	if err != nil {
		return nil, fmt.Errorf("tv credits for %d: %w", tvID, err)
	}

	people := make([]models.Person, 0, len(credits.Cast)*4)
	for _, member := range credits.Cast {
		people = append(people, personFromCastMember(member))
	}

	// The season list is required to enumerate episode performers; without
	// it the payload would be incomplete and must not be cached.
	details, err := s.client.GetTVDetails(ctx, tvID)
	if err != nil {
		return nil, fmt.Errorf("tv details for %d: %w", tvID, err)
	}

	episodePeople := s.episodeCast(ctx, tvID, details.Seasons)
	people = append(people, episodePeople...)

	return dedupePeople(people), nil
}

// episodeCast enumerates every episode of every regular season and gathers
// per-episode credits. Season 0 (specials) is skipped. All lookups run
// concurrently and settle independently; a failed season or episode is
// logged and contributes nothing. The fold happens in fixed season/episode
// order regardless of goroutine completion order, keeping output
// deterministic for a given set of successes.
func (s *Service) episodeCast(ctx context.Context, tvID int, seasons []tmdb.SeasonSummary) []models.Person {
	regular := make([]tmdb.SeasonSummary, 0, len(seasons))
	for _, season := range seasons {
		if season.SeasonNumber == 0 {
			continue
		}
		regular = append(regular, season)
	}

	// Pass 1: season episode lists, all settled.
	seasonDetails := make([]*tmdb.SeasonDetails, len(regular))
	seasonTasks := make([]func(), len(regular))
	for i, season := range regular {
		i, season := i, season
		seasonTasks[i] = func() {
			details, err := s.client.GetSeasonDetails(ctx, tvID, season.SeasonNumber)
			if err != nil {
				logging.Ctx(ctx).Warn().
					Err(err).
					Int("tv_id", tvID).
					Int("season", season.SeasonNumber).
					Msg("Season lookup failed, skipping")
				return
			}
			seasonDetails[i] = details
		}
	}
	gatherAll(seasonTasks)

	// Pass 2: per-episode credits, all settled, results slotted by
	// (season index, episode index).
	type slot struct {
		credits *tmdb.EpisodeCredits
	}
	episodeSlots := make([][]slot, len(regular))
	var episodeTasks []func()
	for i, details := range seasonDetails {
		if details == nil {
			continue
		}
		episodeSlots[i] = make([]slot, len(details.Episodes))
		for j, episode := range details.Episodes {
			i, j := i, j
			seasonNumber := details.SeasonNumber
			episodeNumber := episode.EpisodeNumber
			episodeTasks = append(episodeTasks, func() {
				credits, err := s.client.GetEpisodeCredits(ctx, tvID, seasonNumber, episodeNumber)
				if err != nil {
					logging.Ctx(ctx).Warn().
						Err(err).
						Int("tv_id", tvID).
						Int("season", seasonNumber).
						Int("episode", episodeNumber).
						Msg("Episode credits failed, skipping")
					return
				}
				episodeSlots[i][j] = slot{credits: credits}
			})
		}
	}
	gatherAll(episodeTasks)

	// Deterministic fold: seasons ascending, episodes ascending, cast
	// before guest stars.
	people := make([]models.Person, 0, 256)
	for i := range episodeSlots {
		for j := range episodeSlots[i] {
			credits := episodeSlots[i][j].credits
			if credits == nil {
				continue
			}
			for _, member := range credits.Cast {
				people = append(people, personFromCastMember(member))
			}
			for _, member := range credits.GuestStars {
				people = append(people, personFromCastMember(member))
			}
		}
	}
	return people
}

// personFromCastMember converts a credits entry to the domain model.
func personFromCastMember(m tmdb.CastMember) models.Person {
	return models.Person{
		ID:                 m.ID,
		Name:               m.Name,
		ProfilePath:        m.ProfilePath,
		KnownForDepartment: m.KnownForDepartment,
		Popularity:         m.Popularity,
	}
}

// imagePaths flattens an image gallery to at most limit file paths.
func imagePaths(images *tmdb.PersonImages, limit int) []string {
	if images == nil || len(images.Profiles) == 0 {
		return nil
	}
	n := len(images.Profiles)
	if n > limit {
		n = limit
	}
	paths := make([]string, 0, n)
	for _, profile := range images.Profiles[:n] {
		paths = append(paths, profile.FilePath)
	}
	return paths
}

// dedupePeople keeps the first occurrence of each person ID.
func dedupePeople(people []models.Person) []models.Person {
	seen := make(map[int]struct{}, len(people))
	out := make([]models.Person, 0, len(people))
	for _, p := range people {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
