// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package models

import (
	"fmt"
	"strings"
)

// MediaKind discriminates the MediaItem tagged union. Film and series ID
// spaces are independent upstream, so identity is always (Kind, ID).
type MediaKind string

const (
	// MediaKindMovie marks a theatrical film credit.
	MediaKindMovie MediaKind = "movie"

	// MediaKindTV marks a television series credit.
	MediaKindTV MediaKind = "tv"
)

// ParseMediaKind validates a media type string from the HTTP boundary.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(s)) {
	case MediaKindMovie:
		return MediaKindMovie, nil
	case MediaKindTV:
		return MediaKindTV, nil
	default:
		return "", fmt.Errorf("invalid media type %q (must be movie or tv)", s)
	}
}

// MediaItem is the tagged union of a film and a series credit.
//
// Kind is the discriminant. Title/ReleaseDate are populated for movies,
// Name/FirstAirDate for series; the JSON shape mirrors the upstream catalog
// so the UI can consume items unchanged. GenreIDs is series-only and is
// either carried over from the parent query or backfilled from a detail
// lookup during genre admission.
type MediaItem struct {
	Kind         MediaKind `json:"media_type"`
	ID           int       `json:"id"`
	Title        string    `json:"title,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	Name         string    `json:"name,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	PosterPath   *string   `json:"poster_path"`
	GenreIDs     []int     `json:"genre_ids,omitempty"`
}

// DisplayTitle returns the human-facing title regardless of kind.
func (m MediaItem) DisplayTitle() string {
	if m.Kind == MediaKindTV {
		return m.Name
	}
	return m.Title
}

// Key returns the identity string "kind:id" used for deduplication.
func (m MediaItem) Key() string {
	return fmt.Sprintf("%s:%d", m.Kind, m.ID)
}

// MediaFilter selects which media kinds an aggregation covers.
type MediaFilter string

const (
	FilterAllMedia   MediaFilter = "ALL_MEDIA"
	FilterMoviesOnly MediaFilter = "MOVIES_ONLY"
	FilterTVOnly     MediaFilter = "TV_ONLY"
)

// ParseMediaFilter validates a media filter string from the HTTP boundary.
// The empty string defaults to ALL_MEDIA, matching the UI contract.
func ParseMediaFilter(s string) (MediaFilter, error) {
	switch MediaFilter(s) {
	case "":
		return FilterAllMedia, nil
	case FilterAllMedia, FilterMoviesOnly, FilterTVOnly:
		return MediaFilter(s), nil
	default:
		return "", fmt.Errorf("invalid media filter %q (must be ALL_MEDIA, MOVIES_ONLY or TV_ONLY)", s)
	}
}

// IncludesMovies reports whether film credits are in scope for the filter.
func (f MediaFilter) IncludesMovies() bool {
	return f == FilterAllMedia || f == FilterMoviesOnly
}

// IncludesTV reports whether series credits are in scope for the filter.
func (f MediaFilter) IncludesTV() bool {
	return f == FilterAllMedia || f == FilterTVOnly
}
