// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package tmdb provides the HTTP client for the upstream movie catalog API.
//
// Client Features:
//   - HTTP client with configurable timeout
//   - API key authentication on every request
//   - Fixed-window rate limiting (every call passes through the limiter
//     before touching the network)
//   - Optional circuit breaker protection (see circuit_breaker.go)
//   - JSON response parsing with typed response structs
//   - Context support for cancellation and timeouts
//
// All methods are safe for concurrent use.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/config"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/metrics"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/ratelimit"
)

// maxErrorBodySize limits how much of a failed response body is read for
// error reporting, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// ErrNotFound marks a 404 from the catalog (unknown person, movie or series).
var ErrNotFound = errors.New("catalog resource not found")

// API defines the catalog operations used by the aggregation pipeline.
//
// It is implemented by Client for production use, by BreakerClient when the
// circuit breaker is enabled, and by fakes in tests. All methods accept a
// context for cancellation and return typed response structs.
type API interface {
	GetPerson(ctx context.Context, personID int) (*PersonDetails, error)
	GetPersonMovieCredits(ctx context.Context, personID int) (*MovieCredits, error)
	GetPersonTVCredits(ctx context.Context, personID int) (*TVCredits, error)
	GetPersonImages(ctx context.Context, personID int) (*PersonImages, error)
	GetPopularPeople(ctx context.Context, page int) (*PopularPage, error)
	GetMovieCredits(ctx context.Context, movieID int) (*MediaCredits, error)
	GetMovieReleaseDates(ctx context.Context, movieID int) (*ReleaseDatesResponse, error)
	GetTVCredits(ctx context.Context, tvID int) (*MediaCredits, error)
	GetTVDetails(ctx context.Context, tvID int) (*TVDetails, error)
	GetSeasonDetails(ctx context.Context, tvID, seasonNumber int) (*SeasonDetails, error)
	GetEpisodeCredits(ctx context.Context, tvID, seasonNumber, episodeNumber int) (*EpisodeCredits, error)
	SearchMovies(ctx context.Context, query string, page int) (*SearchMoviePage, error)
	SearchTV(ctx context.Context, query string, page int) (*SearchTVPage, error)
}

// Client handles communication with the catalog HTTP API.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
	limiter  *ratelimit.Limiter
}

// compile-time interface check
var _ API = (*Client)(nil)

// NewClient creates a catalog client from configuration. The limiter paces
// every outbound request; it must not be nil.
func NewClient(cfg *config.TMDBConfig, limiter *ratelimit.Limiter) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		limiter: limiter,
	}
}

// readBodyForError reads a failed response body for diagnostics, capped at
// maxErrorBodySize.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// makeRequest handles common catalog request boilerplate: rate limiter
// admission, URL construction with credentials, the GET itself, status
// checking, and JSON decoding into result.
//
// endpoint is the stable metric label for the call (e.g. "person_movie_credits");
// path is the URL path below the base URL (e.g. "/person/31/movie_credits").
func (c *Client) makeRequest(ctx context.Context, endpoint, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter admission for %s: %w", endpoint, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordCatalogRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.RecordCatalogRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%s returned HTTP %d: %s", endpoint, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}

// GetPerson fetches a person's detail record.
func (c *Client) GetPerson(ctx context.Context, personID int) (*PersonDetails, error) {
	var result PersonDetails
	path := fmt.Sprintf("/person/%d", personID)
	if err := c.makeRequest(ctx, "person", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPersonMovieCredits fetches a person's film credits.
func (c *Client) GetPersonMovieCredits(ctx context.Context, personID int) (*MovieCredits, error) {
	var result MovieCredits
	path := fmt.Sprintf("/person/%d/movie_credits", personID)
	if err := c.makeRequest(ctx, "person_movie_credits", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPersonTVCredits fetches a person's series credits.
func (c *Client) GetPersonTVCredits(ctx context.Context, personID int) (*TVCredits, error) {
	var result TVCredits
	path := fmt.Sprintf("/person/%d/tv_credits", personID)
	if err := c.makeRequest(ctx, "person_tv_credits", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPersonImages fetches a person's profile image gallery.
func (c *Client) GetPersonImages(ctx context.Context, personID int) (*PersonImages, error) {
	var result PersonImages
	path := fmt.Sprintf("/person/%d/images", personID)
	if err := c.makeRequest(ctx, "person_images", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPopularPeople fetches one page of the popular-people listing.
func (c *Client) GetPopularPeople(ctx context.Context, page int) (*PopularPage, error) {
	var result PopularPage
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if err := c.makeRequest(ctx, "popular_people", "/person/popular", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMovieCredits fetches the billed cast of a film.
func (c *Client) GetMovieCredits(ctx context.Context, movieID int) (*MediaCredits, error) {
	var result MediaCredits
	path := fmt.Sprintf("/movie/%d/credits", movieID)
	if err := c.makeRequest(ctx, "movie_credits", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMovieReleaseDates fetches a film's regional release and certification
// records.
func (c *Client) GetMovieReleaseDates(ctx context.Context, movieID int) (*ReleaseDatesResponse, error) {
	var result ReleaseDatesResponse
	path := fmt.Sprintf("/movie/%d/release_dates", movieID)
	if err := c.makeRequest(ctx, "movie_release_dates", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTVCredits fetches the main billed cast of a series.
func (c *Client) GetTVCredits(ctx context.Context, tvID int) (*MediaCredits, error) {
	var result MediaCredits
	path := fmt.Sprintf("/tv/%d/credits", tvID)
	if err := c.makeRequest(ctx, "tv_credits", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTVDetails fetches a series' detail record including genres and seasons.
func (c *Client) GetTVDetails(ctx context.Context, tvID int) (*TVDetails, error) {
	var result TVDetails
	path := fmt.Sprintf("/tv/%d", tvID)
	if err := c.makeRequest(ctx, "tv_details", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSeasonDetails fetches a season's episode list.
func (c *Client) GetSeasonDetails(ctx context.Context, tvID, seasonNumber int) (*SeasonDetails, error) {
	var result SeasonDetails
	path := fmt.Sprintf("/tv/%d/season/%d", tvID, seasonNumber)
	if err := c.makeRequest(ctx, "season_details", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEpisodeCredits fetches an episode's cast including guest stars.
func (c *Client) GetEpisodeCredits(ctx context.Context, tvID, seasonNumber, episodeNumber int) (*EpisodeCredits, error) {
	var result EpisodeCredits
	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/credits", tvID, seasonNumber, episodeNumber)
	if err := c.makeRequest(ctx, "episode_credits", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchMovies searches films by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchMoviePage, error) {
	var result SearchMoviePage
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	if err := c.makeRequest(ctx, "search_movies", "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchTV searches series by name.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (*SearchTVPage, error) {
	var result SearchTVPage
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	if err := c.makeRequest(ctx, "search_tv", "/search/tv", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
