// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package tmdb

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/metrics"
)

// BreakerClient wraps an API implementation with a circuit breaker so a
// struggling upstream fails fast instead of stacking up rate-limited
// requests behind a dead endpoint.
//
// Breaker policy:
//   - trips when at least 10 requests have been seen and over 60% failed
//   - stays open for 60 seconds, then admits trial requests (half-open)
//   - counters reset every 120 seconds while closed
type BreakerClient struct {
	inner   API
	breaker *gobreaker.CircuitBreaker[interface{}]
}

var _ API = (*BreakerClient)(nil)

// NewBreakerClient wraps inner with a circuit breaker.
func NewBreakerClient(inner API) *BreakerClient {
	settings := gobreaker.Settings{
		Name:     "catalog",
		Interval: 120 * time.Second,
		Timeout:  60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio > 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.CircuitBreakerTransitions.WithLabelValues(from.String(), to.String()).Inc()
			metrics.CircuitBreakerState.Set(breakerStateValue(to))
		},
	}

	return &BreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[interface{}](settings),
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

// execute runs fn through the breaker and records the outcome.
func (b *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.breaker.Execute(fn)
	switch {
	case err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests:
		metrics.CircuitBreakerRequests.WithLabelValues("rejected").Inc()
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues("failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues("success").Inc()
	}
	return result, err
}

// castResult converts the breaker's interface{} result back to the typed
// response. A type mismatch indicates a programming error in the wrapper.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker returned unexpected type %T", result)
	}
	return typed, nil
}

func (b *BreakerClient) GetPerson(ctx context.Context, personID int) (*PersonDetails, error) {
	return castResult[*PersonDetails](b.execute(func() (interface{}, error) {
		return b.inner.GetPerson(ctx, personID)
	}))
}

func (b *BreakerClient) GetPersonMovieCredits(ctx context.Context, personID int) (*MovieCredits, error) {
	return castResult[*MovieCredits](b.execute(func() (interface{}, error) {
		return b.inner.GetPersonMovieCredits(ctx, personID)
	}))
}

func (b *BreakerClient) GetPersonTVCredits(ctx context.Context, personID int) (*TVCredits, error) {
	return castResult[*TVCredits](b.execute(func() (interface{}, error) {
		return b.inner.GetPersonTVCredits(ctx, personID)
	}))
}

func (b *BreakerClient) GetPersonImages(ctx context.Context, personID int) (*PersonImages, error) {
	return castResult[*PersonImages](b.execute(func() (interface{}, error) {
		return b.inner.GetPersonImages(ctx, personID)
	}))
}

func (b *BreakerClient) GetPopularPeople(ctx context.Context, page int) (*PopularPage, error) {
	return castResult[*PopularPage](b.execute(func() (interface{}, error) {
		return b.inner.GetPopularPeople(ctx, page)
	}))
}

func (b *BreakerClient) GetMovieCredits(ctx context.Context, movieID int) (*MediaCredits, error) {
	return castResult[*MediaCredits](b.execute(func() (interface{}, error) {
		return b.inner.GetMovieCredits(ctx, movieID)
	}))
}

func (b *BreakerClient) GetMovieReleaseDates(ctx context.Context, movieID int) (*ReleaseDatesResponse, error) {
	return castResult[*ReleaseDatesResponse](b.execute(func() (interface{}, error) {
		return b.inner.GetMovieReleaseDates(ctx, movieID)
	}))
}

func (b *BreakerClient) GetTVCredits(ctx context.Context, tvID int) (*MediaCredits, error) {
	return castResult[*MediaCredits](b.execute(func() (interface{}, error) {
		return b.inner.GetTVCredits(ctx, tvID)
	}))
}

func (b *BreakerClient) GetTVDetails(ctx context.Context, tvID int) (*TVDetails, error) {
	return castResult[*TVDetails](b.execute(func() (interface{}, error) {
		return b.inner.GetTVDetails(ctx, tvID)
	}))
}

func (b *BreakerClient) GetSeasonDetails(ctx context.Context, tvID, seasonNumber int) (*SeasonDetails, error) {
	return castResult[*SeasonDetails](b.execute(func() (interface{}, error) {
		return b.inner.GetSeasonDetails(ctx, tvID, seasonNumber)
	}))
}

func (b *BreakerClient) GetEpisodeCredits(ctx context.Context, tvID, seasonNumber, episodeNumber int) (*EpisodeCredits, error) {
	return castResult[*EpisodeCredits](b.execute(func() (interface{}, error) {
		return b.inner.GetEpisodeCredits(ctx, tvID, seasonNumber, episodeNumber)
	}))
}

func (b *BreakerClient) SearchMovies(ctx context.Context, query string, page int) (*SearchMoviePage, error) {
	return castResult[*SearchMoviePage](b.execute(func() (interface{}, error) {
		return b.inner.SearchMovies(ctx, query, page)
	}))
}

func (b *BreakerClient) SearchTV(ctx context.Context, query string, page int) (*SearchTVPage, error) {
	return castResult[*SearchTVPage](b.execute(func() (interface{}, error) {
		return b.inner.SearchTV(ctx, query, page)
	}))
}
