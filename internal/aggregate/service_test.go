// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/cache"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/config"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/tmdb"
)

// fakeAPI implements tmdb.API with per-method function hooks and counts
// every call, so tests can assert both behavior and call volume.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	getPerson             func(id int) (*tmdb.PersonDetails, error)
	getPersonMovieCredits func(id int) (*tmdb.MovieCredits, error)
	getPersonTVCredits    func(id int) (*tmdb.TVCredits, error)
	getPersonImages       func(id int) (*tmdb.PersonImages, error)
	getPopularPeople      func(page int) (*tmdb.PopularPage, error)
	getMovieCredits       func(id int) (*tmdb.MediaCredits, error)
	getMovieReleaseDates  func(id int) (*tmdb.ReleaseDatesResponse, error)
	getTVCredits          func(id int) (*tmdb.MediaCredits, error)
	getTVDetails          func(id int) (*tmdb.TVDetails, error)
	getSeasonDetails      func(tvID, season int) (*tmdb.SeasonDetails, error)
	getEpisodeCredits     func(tvID, season, episode int) (*tmdb.EpisodeCredits, error)
	searchMovies          func(query string, page int) (*tmdb.SearchMoviePage, error)
	searchTV              func(query string, page int) (*tmdb.SearchTVPage, error)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) record(method string) {
	f.mu.Lock()
	f.calls[method]++
	f.mu.Unlock()
}

func (f *fakeAPI) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

var errUnstubbed = errors.New("unstubbed fake method")

func (f *fakeAPI) GetPerson(_ context.Context, id int) (*tmdb.PersonDetails, error) {
	f.record("GetPerson")
	if f.getPerson == nil {
		return nil, errUnstubbed
	}
	return f.getPerson(id)
}

func (f *fakeAPI) GetPersonMovieCredits(_ context.Context, id int) (*tmdb.MovieCredits, error) {
	f.record("GetPersonMovieCredits")
	if f.getPersonMovieCredits == nil {
		return nil, errUnstubbed
	}
	return f.getPersonMovieCredits(id)
}

func (f *fakeAPI) GetPersonTVCredits(_ context.Context, id int) (*tmdb.TVCredits, error) {
	f.record("GetPersonTVCredits")
	if f.getPersonTVCredits == nil {
		return nil, errUnstubbed
	}
	return f.getPersonTVCredits(id)
}

func (f *fakeAPI) GetPersonImages(_ context.Context, id int) (*tmdb.PersonImages, error) {
	f.record("GetPersonImages")
	if f.getPersonImages == nil {
		return nil, errUnstubbed
	}
	return f.getPersonImages(id)
}

func (f *fakeAPI) GetPopularPeople(_ context.Context, page int) (*tmdb.PopularPage, error) {
	f.record("GetPopularPeople")
	if f.getPopularPeople == nil {
		return nil, errUnstubbed
	}
	return f.getPopularPeople(page)
}

func (f *fakeAPI) GetMovieCredits(_ context.Context, id int) (*tmdb.MediaCredits, error) {
	f.record("GetMovieCredits")
	if f.getMovieCredits == nil {
		return nil, errUnstubbed
	}
	return f.getMovieCredits(id)
}

func (f *fakeAPI) GetMovieReleaseDates(_ context.Context, id int) (*tmdb.ReleaseDatesResponse, error) {
	f.record("GetMovieReleaseDates")
	if f.getMovieReleaseDates == nil {
		return nil, errUnstubbed
	}
	return f.getMovieReleaseDates(id)
}

func (f *fakeAPI) GetTVCredits(_ context.Context, id int) (*tmdb.MediaCredits, error) {
	f.record("GetTVCredits")
	if f.getTVCredits == nil {
		return nil, errUnstubbed
	}
	return f.getTVCredits(id)
}

func (f *fakeAPI) GetTVDetails(_ context.Context, id int) (*tmdb.TVDetails, error) {
	f.record("GetTVDetails")
	if f.getTVDetails == nil {
		return nil, errUnstubbed
	}
	return f.getTVDetails(id)
}

func (f *fakeAPI) GetSeasonDetails(_ context.Context, tvID, season int) (*tmdb.SeasonDetails, error) {
	f.record("GetSeasonDetails")
	if f.getSeasonDetails == nil {
		return nil, errUnstubbed
	}
	return f.getSeasonDetails(tvID, season)
}

func (f *fakeAPI) GetEpisodeCredits(_ context.Context, tvID, season, episode int) (*tmdb.EpisodeCredits, error) {
	f.record("GetEpisodeCredits")
	if f.getEpisodeCredits == nil {
		return nil, errUnstubbed
	}
	return f.getEpisodeCredits(tvID, season, episode)
}

func (f *fakeAPI) SearchMovies(_ context.Context, query string, page int) (*tmdb.SearchMoviePage, error) {
	f.record("SearchMovies")
	if f.searchMovies == nil {
		return nil, errUnstubbed
	}
	return f.searchMovies(query, page)
}

func (f *fakeAPI) SearchTV(_ context.Context, query string, page int) (*tmdb.SearchTVPage, error) {
	f.record("SearchTV")
	if f.searchTV == nil {
		return nil, errUnstubbed
	}
	return f.searchTV(query, page)
}

var _ tmdb.API = (*fakeAPI)(nil)

func testGameConfig() *config.GameConfig {
	return &config.GameConfig{
		PopularPageCeiling: 10,
		HomeRegions:        []string{"USA", "United Kingdom", "Canada"},
		FallbackTargetID:   1397778,
	}
}

func newTestService(t *testing.T, client tmdb.API) *Service {
	t.Helper()
	c := cache.New(time.Hour)
	t.Cleanup(c.Stop)
	svc := NewService(client, c, testGameConfig())
	// Deterministic counter sequence; a constant would never yield the
	// distinct values random page selection needs.
	var ctr int
	svc.randIntN = func(n int) int {
		ctr++
		return ctr % n
	}
	return svc
}

func strPtr(s string) *string { return &s }

func TestMediaForPersonMoviesAndTV(t *testing.T) {
	api := newFakeAPI()
	api.getPersonMovieCredits = func(id int) (*tmdb.MovieCredits, error) {
		return &tmdb.MovieCredits{Cast: []tmdb.MovieCredit{
			{ID: 13, Title: "Forrest Gump", ReleaseDate: "1994-06-23"},
		}}, nil
	}
	api.getPersonTVCredits = func(id int) (*tmdb.TVCredits, error) {
		return &tmdb.TVCredits{Cast: []tmdb.TVCredit{
			{ID: 1418, Name: "The Big Bang Theory", GenreIDs: []int{35}},
		}}, nil
	}

	svc := newTestService(t, api)
	items, cached, err := svc.MediaForPerson(context.Background(), 31, models.FilterAllMedia)
	if err != nil {
		t.Fatalf("MediaForPerson() failed: %v", err)
	}
	if cached {
		t.Error("first call must not be cached")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Kind != models.MediaKindMovie || items[1].Kind != models.MediaKindTV {
		t.Errorf("expected movie then tv ordering, got %+v", items)
	}
}

func TestMediaForPersonCacheIdempotent(t *testing.T) {
	api := newFakeAPI()
	api.getPersonMovieCredits = func(id int) (*tmdb.MovieCredits, error) {
		return &tmdb.MovieCredits{Cast: []tmdb.MovieCredit{{ID: 13, Title: "Forrest Gump"}}}, nil
	}

	svc := newTestService(t, api)
	ctx := context.Background()

	first, _, err := svc.MediaForPerson(ctx, 31, models.FilterMoviesOnly)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, cached, err := svc.MediaForPerson(ctx, 31, models.FilterMoviesOnly)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !cached {
		t.Error("second call should be served from cache")
	}
	if len(first) != len(second) {
		t.Error("cached payload differs from fresh payload")
	}
	if api.count("GetPersonMovieCredits") != 1 {
		t.Errorf("expected 1 upstream call, got %d", api.count("GetPersonMovieCredits"))
	}
}

func TestMediaForPersonFilterScopesCalls(t *testing.T) {
	api := newFakeAPI()
	api.getPersonMovieCredits = func(id int) (*tmdb.MovieCredits, error) {
		return &tmdb.MovieCredits{}, nil
	}
	// TV credits intentionally unstubbed: MOVIES_ONLY must never call it.

	svc := newTestService(t, api)
	if _, _, err := svc.MediaForPerson(context.Background(), 31, models.FilterMoviesOnly); err != nil {
		t.Fatalf("MediaForPerson() failed: %v", err)
	}
	if api.count("GetPersonTVCredits") != 0 {
		t.Error("MOVIES_ONLY must not fetch tv credits")
	}
}

func TestMediaForPersonGenreAdmission(t *testing.T) {
	api := newFakeAPI()
	api.getPersonTVCredits = func(id int) (*tmdb.TVCredits, error) {
		return &tmdb.TVCredits{Cast: []tmdb.TVCredit{
			{ID: 1, Name: "Kept Drama", GenreIDs: []int{18}},
			{ID: 2, Name: "Talk Show", GenreIDs: []int{18, 10767}},      // excluded genre wins
			{ID: 3, Name: "Uncategorized", GenreIDs: []int{99999}},      // no allowed genre
			{ID: 122843, Name: "Honest Trailers", GenreIDs: []int{35}},  // fixed exclusion list
			{ID: 5, Name: "Needs Backfill"},                             // genres from detail lookup
			{ID: 6, Name: "Backfill Fails"},                             // dropped, not admitted unvetted
		}}, nil
	}
	api.getTVDetails = func(id int) (*tmdb.TVDetails, error) {
		switch id {
		case 5:
			return &tmdb.TVDetails{ID: 5, Genres: []tmdb.Genre{{ID: 35, Name: "Comedy"}}}, nil
		default:
			return nil, errors.New("details unavailable")
		}
	}

	svc := newTestService(t, api)
	items, _, err := svc.MediaForPerson(context.Background(), 31, models.FilterTVOnly)
	if err != nil {
		t.Fatalf("MediaForPerson() failed: %v", err)
	}

	got := make(map[int]bool)
	for _, item := range items {
		got[item.ID] = true
	}
	if !got[1] || !got[5] {
		t.Errorf("expected series 1 and 5 admitted, got %+v", items)
	}
	if got[2] || got[3] || got[122843] || got[6] {
		t.Errorf("inadmissible series leaked through: %+v", items)
	}
}

func TestMediaForPersonUpstreamError(t *testing.T) {
	api := newFakeAPI()
	api.getPersonMovieCredits = func(id int) (*tmdb.MovieCredits, error) {
		return nil, errors.New("upstream down")
	}

	svc := newTestService(t, api)
	if _, _, err := svc.MediaForPerson(context.Background(), 31, models.FilterMoviesOnly); err == nil {
		t.Error("expected upstream error to propagate")
	}
}

func TestSearchMediaAppliesGenreAdmission(t *testing.T) {
	api := newFakeAPI()
	api.searchMovies = func(query string, page int) (*tmdb.SearchMoviePage, error) {
		return &tmdb.SearchMoviePage{Results: []tmdb.MovieResult{
			{ID: 862, Title: "Toy Story"},
		}}, nil
	}
	api.searchTV = func(query string, page int) (*tmdb.SearchTVPage, error) {
		return &tmdb.SearchTVPage{Results: []tmdb.TVResult{
			{ID: 1418, Name: "The Big Bang Theory", GenreIDs: []int{35}},
			{ID: 2261, Name: "The Tonight Show", GenreIDs: []int{10767}},
		}}, nil
	}

	svc := newTestService(t, api)
	items, err := svc.SearchMedia(context.Background(), "the", models.FilterAllMedia)
	if err != nil {
		t.Fatalf("SearchMedia() failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected movie + admitted series, got %+v", items)
	}
	for _, item := range items {
		if item.ID == 2261 {
			t.Error("talk show must not pass genre admission")
		}
	}
}

func TestMovieCastWithImages(t *testing.T) {
	api := newFakeAPI()
	api.getMovieCredits = func(id int) (*tmdb.MediaCredits, error) {
		return &tmdb.MediaCredits{Cast: []tmdb.CastMember{
			{ID: 31, Name: "Tom Hanks", Order: 0},
			{ID: 32, Name: "Robin Wright", Order: 1},
		}}, nil
	}
	api.getPersonImages = func(id int) (*tmdb.PersonImages, error) {
		if id == 32 {
			return nil, errors.New("gallery unavailable")
		}
		return &tmdb.PersonImages{ID: id, Profiles: []tmdb.ProfileImage{
			{FilePath: "/a.jpg"}, {FilePath: "/b.jpg"}, {FilePath: "/c.jpg"},
			{FilePath: "/d.jpg"}, {FilePath: "/e.jpg"},
		}}, nil
	}

	svc := newTestService(t, api)
	people, _, err := svc.Cast(context.Background(), models.MediaKindMovie, 13)
	if err != nil {
		t.Fatalf("Cast() failed: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("expected 2 people, got %d", len(people))
	}
	if len(people[0].Images) != maxImagesPerPerson {
		t.Errorf("expected gallery capped at %d, got %d", maxImagesPerPerson, len(people[0].Images))
	}
	// A failed gallery lookup must not drop the performer.
	if people[1].Name != "Robin Wright" || people[1].Images != nil {
		t.Errorf("expected Robin Wright with empty gallery, got %+v", people[1])
	}
}

func TestTVCastIncludesGuestStars(t *testing.T) {
	api := newFakeAPI()
	api.getTVCredits = func(id int) (*tmdb.MediaCredits, error) {
		return &tmdb.MediaCredits{Cast: []tmdb.CastMember{
			{ID: 1397778, Name: "Jim Parsons", Popularity: 50},
		}}, nil
	}
	api.getTVDetails = func(id int) (*tmdb.TVDetails, error) {
		return &tmdb.TVDetails{ID: id, Seasons: []tmdb.SeasonSummary{
			{SeasonNumber: 0, EpisodeCount: 3}, // specials, skipped
			{SeasonNumber: 1, EpisodeCount: 2},
		}}, nil
	}
	api.getSeasonDetails = func(tvID, season int) (*tmdb.SeasonDetails, error) {
		if season == 0 {
			t.Error("season 0 must not be fetched")
		}
		return &tmdb.SeasonDetails{SeasonNumber: season, Episodes: []tmdb.EpisodeSummary{
			{EpisodeNumber: 1}, {EpisodeNumber: 2},
		}}, nil
	}
	api.getEpisodeCredits = func(tvID, season, episode int) (*tmdb.EpisodeCredits, error) {
		if episode == 2 {
			return nil, errors.New("episode lookup failed")
		}
		return &tmdb.EpisodeCredits{
			Cast: []tmdb.CastMember{
				// Same person as main billing but with stale popularity;
				// main-cast entry must win deduplication.
				{ID: 1397778, Name: "Jim Parsons", Popularity: 1},
			},
			GuestStars: []tmdb.CastMember{
				{ID: 777, Name: "Guest Star"},
			},
		}, nil
	}

	svc := newTestService(t, api)
	people, _, err := svc.Cast(context.Background(), models.MediaKindTV, 1418)
	if err != nil {
		t.Fatalf("Cast() failed: %v", err)
	}

	if len(people) != 2 {
		t.Fatalf("expected main cast + guest, got %+v", people)
	}
	if people[0].ID != 1397778 || people[0].Popularity != 50 {
		t.Errorf("main billing must take precedence: %+v", people[0])
	}
	if people[1].ID != 777 {
		t.Errorf("guest star missing: %+v", people)
	}
}

func TestTVCastDetailsFailureNotCached(t *testing.T) {
	api := newFakeAPI()
	api.getTVCredits = func(id int) (*tmdb.MediaCredits, error) {
		return &tmdb.MediaCredits{Cast: []tmdb.CastMember{{ID: 1, Name: "Lead"}}}, nil
	}
	detailsDown := true
	api.getTVDetails = func(id int) (*tmdb.TVDetails, error) {
		if detailsDown {
			return nil, errors.New("details down")
		}
		return &tmdb.TVDetails{ID: id, Seasons: []tmdb.SeasonSummary{
			{SeasonNumber: 1, EpisodeCount: 1},
		}}, nil
	}
	api.getSeasonDetails = func(tvID, season int) (*tmdb.SeasonDetails, error) {
		return &tmdb.SeasonDetails{SeasonNumber: season, Episodes: []tmdb.EpisodeSummary{
			{EpisodeNumber: 1},
		}}, nil
	}
	api.getEpisodeCredits = func(tvID, season, episode int) (*tmdb.EpisodeCredits, error) {
		return &tmdb.EpisodeCredits{GuestStars: []tmdb.CastMember{
			{ID: 777, Name: "Guest Star"},
		}}, nil
	}

	svc := newTestService(t, api)
	ctx := context.Background()

	// The season list is required, so its failure fails the whole call.
	if _, _, err := svc.Cast(ctx, models.MediaKindTV, 1418); err == nil {
		t.Fatal("Cast() should fail when series details are unavailable")
	}

	// After the upstream recovers, episode performers must be reachable:
	// a main-cast-only payload must not have been cached by the failure.
	detailsDown = false
	people, cached, err := svc.Cast(ctx, models.MediaKindTV, 1418)
	if err != nil {
		t.Fatalf("Cast() after recovery failed: %v", err)
	}
	if cached {
		t.Error("failed resolution must not populate the cache")
	}
	if len(people) != 2 || people[1].ID != 777 {
		t.Errorf("expected full cast after recovery, got %+v", people)
	}
}

func TestCastCached(t *testing.T) {
	api := newFakeAPI()
	api.getMovieCredits = func(id int) (*tmdb.MediaCredits, error) {
		return &tmdb.MediaCredits{Cast: []tmdb.CastMember{{ID: 31, Name: "Tom Hanks"}}}, nil
	}
	api.getPersonImages = func(id int) (*tmdb.PersonImages, error) {
		return &tmdb.PersonImages{}, nil
	}

	svc := newTestService(t, api)
	ctx := context.Background()

	if _, cached, err := svc.Cast(ctx, models.MediaKindMovie, 13); err != nil || cached {
		t.Fatalf("first call: cached=%v err=%v", cached, err)
	}
	if _, cached, err := svc.Cast(ctx, models.MediaKindMovie, 13); err != nil || !cached {
		t.Fatalf("second call should hit cache: cached=%v err=%v", cached, err)
	}
	if api.count("GetMovieCredits") != 1 {
		t.Errorf("expected 1 credits call, got %d", api.count("GetMovieCredits"))
	}
}

func popularPageFor(page int) *tmdb.PopularPage {
	results := make([]tmdb.PopularPerson, 0, 20)
	for i := 0; i < 20; i++ {
		results = append(results, tmdb.PopularPerson{
			ID:                 page*1000 + i,
			Name:               fmt.Sprintf("Actor %d-%d", page, i),
			KnownForDepartment: "Acting",
			Popularity:         float64(100 - i),
		})
	}
	// Non-acting entries must be dropped.
	results = append(results, tmdb.PopularPerson{
		ID: page * 1000000, Name: "Famous Director", KnownForDepartment: "Directing",
	})
	return &tmdb.PopularPage{Page: page, Results: results, TotalPages: 500}
}

func TestPopularActors(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return popularPageFor(page), nil
	}

	svc := newTestService(t, api)
	actors, err := svc.PopularActors(context.Background(), false)
	if err != nil {
		t.Fatalf("PopularActors() failed: %v", err)
	}
	if len(actors) != popularActorCount {
		t.Fatalf("expected %d actors, got %d", popularActorCount, len(actors))
	}
	seen := make(map[int]bool)
	for _, a := range actors {
		if a.KnownForDepartment != "Acting" {
			t.Errorf("non-acting entry leaked: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate actor %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestPopularActorsToleratesOneFailedPage(t *testing.T) {
	api := newFakeAPI()
	call := 0
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		call++
		if call == 1 {
			return nil, errors.New("page fetch failed")
		}
		return popularPageFor(page), nil
	}

	svc := newTestService(t, api)
	actors, err := svc.PopularActors(context.Background(), false)
	if err != nil {
		t.Fatalf("one failed page should be tolerated: %v", err)
	}
	if len(actors) == 0 {
		t.Error("expected actors from the surviving page")
	}
}

func TestPopularActorsAllPagesFailed(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return nil, errors.New("listing down")
	}

	svc := newTestService(t, api)
	if _, err := svc.PopularActors(context.Background(), false); err == nil {
		t.Error("expected error when every page fails")
	}
}

func TestPopularActorsRegionFilter(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return &tmdb.PopularPage{Page: page, Results: []tmdb.PopularPerson{
			{ID: 1, Name: "Home", KnownForDepartment: "Acting"},
			{ID: 2, Name: "Abroad", KnownForDepartment: "Acting"},
			{ID: 3, Name: "Unknown", KnownForDepartment: "Acting"},
			{ID: 4, Name: "Lookup Fails", KnownForDepartment: "Acting"},
		}}, nil
	}
	api.getPerson = func(id int) (*tmdb.PersonDetails, error) {
		switch id {
		case 1:
			return &tmdb.PersonDetails{ID: 1, PlaceOfBirth: strPtr("Concord, California, USA")}, nil
		case 2:
			return &tmdb.PersonDetails{ID: 2, PlaceOfBirth: strPtr("Paris, France")}, nil
		case 3:
			return &tmdb.PersonDetails{ID: 3, PlaceOfBirth: nil}, nil
		default:
			return nil, errors.New("person lookup failed")
		}
	}

	svc := newTestService(t, api)
	actors, err := svc.PopularActors(context.Background(), true)
	if err != nil {
		t.Fatalf("PopularActors() failed: %v", err)
	}
	if len(actors) != 1 || actors[0].ID != 1 {
		t.Errorf("only the home-region actor should survive, got %+v", actors)
	}
	if actors[0].PlaceOfBirth == "" {
		t.Error("birthplace should be carried on filtered actors")
	}
}

func TestTargetActorFromPool(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return popularPageFor(page), nil
	}

	svc := newTestService(t, api)
	target, err := svc.TargetActor(context.Background(), false)
	if err != nil {
		t.Fatalf("TargetActor() failed: %v", err)
	}
	if target.KnownForDepartment != "Acting" {
		t.Errorf("target must be an actor, got %+v", target)
	}
}

func TestTargetActorFallback(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return nil, errors.New("listing down")
	}
	api.getPerson = func(id int) (*tmdb.PersonDetails, error) {
		if id != 1397778 {
			t.Errorf("fallback should fetch configured target, got %d", id)
		}
		return &tmdb.PersonDetails{ID: id, Name: "Jim Parsons", KnownForDepartment: "Acting"}, nil
	}

	svc := newTestService(t, api)
	target, err := svc.TargetActor(context.Background(), false)
	if err != nil {
		t.Fatalf("TargetActor() fallback failed: %v", err)
	}
	if target.ID != 1397778 || target.Name != "Jim Parsons" {
		t.Errorf("unexpected fallback target: %+v", target)
	}
}

func TestTargetActorFallbackAlsoFails(t *testing.T) {
	api := newFakeAPI()
	api.getPopularPeople = func(page int) (*tmdb.PopularPage, error) {
		return nil, errors.New("listing down")
	}
	api.getPerson = func(id int) (*tmdb.PersonDetails, error) {
		return nil, errors.New("person down")
	}

	svc := newTestService(t, api)
	if _, err := svc.TargetActor(context.Background(), false); err == nil {
		t.Error("expected error when fallback also fails")
	}
}
