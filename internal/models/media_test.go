// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestParseMediaKind(t *testing.T) {
	cases := []struct {
		in      string
		want    MediaKind
		wantErr bool
	}{
		{"movie", MediaKindMovie, false},
		{"tv", MediaKindTV, false},
		{"Movie", MediaKindMovie, false}, // case-insensitive boundary input
		{"TV", MediaKindTV, false},
		{"", "", true},
		{"book", "", true},
	}
	for _, tc := range cases {
		got, err := ParseMediaKind(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseMediaKind(%q): err=%v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMediaKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseMediaFilter(t *testing.T) {
	cases := []struct {
		in      string
		want    MediaFilter
		wantErr bool
	}{
		{"", FilterAllMedia, false}, // absence defaults to everything
		{"ALL_MEDIA", FilterAllMedia, false},
		{"MOVIES_ONLY", FilterMoviesOnly, false},
		{"TV_ONLY", FilterTVOnly, false},
		{"all_media", "", true}, // filters are case-sensitive contract values
		{"EVERYTHING", "", true},
	}
	for _, tc := range cases {
		got, err := ParseMediaFilter(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseMediaFilter(%q): err=%v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMediaFilter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMediaFilterScope(t *testing.T) {
	if !FilterAllMedia.IncludesMovies() || !FilterAllMedia.IncludesTV() {
		t.Error("ALL_MEDIA should include both kinds")
	}
	if !FilterMoviesOnly.IncludesMovies() || FilterMoviesOnly.IncludesTV() {
		t.Error("MOVIES_ONLY should include movies only")
	}
	if FilterTVOnly.IncludesMovies() || !FilterTVOnly.IncludesTV() {
		t.Error("TV_ONLY should include series only")
	}
}

func TestDisplayTitle(t *testing.T) {
	movie := MediaItem{Kind: MediaKindMovie, Title: "Forrest Gump", Name: "ignored"}
	if got := movie.DisplayTitle(); got != "Forrest Gump" {
		t.Errorf("movie DisplayTitle() = %q", got)
	}
	show := MediaItem{Kind: MediaKindTV, Name: "The Big Bang Theory"}
	if got := show.DisplayTitle(); got != "The Big Bang Theory" {
		t.Errorf("tv DisplayTitle() = %q", got)
	}
}

func TestMediaKey(t *testing.T) {
	// Film and series ID spaces overlap upstream; the key must not.
	movie := MediaItem{Kind: MediaKindMovie, ID: 1418}
	show := MediaItem{Kind: MediaKindTV, ID: 1418}
	if movie.Key() == show.Key() {
		t.Errorf("keys must be kind-scoped: %q vs %q", movie.Key(), show.Key())
	}
}

func TestMediaItemKindDiscriminantJSON(t *testing.T) {
	item := MediaItem{Kind: MediaKindTV, ID: 1418, Name: "The Big Bang Theory"}
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded MediaItem
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != MediaKindTV || decoded.Name != item.Name {
		t.Errorf("discriminant lost in round trip: %+v", decoded)
	}
}

func TestGenreAdmissionHelpers(t *testing.T) {
	if !HasAllowedTVGenre([]int{18}) {
		t.Error("drama should be an allowed genre")
	}
	if HasAllowedTVGenre([]int{10767}) {
		t.Error("talk shows carry no allowed genre")
	}
	if !HasExcludedTVGenre([]int{18, 10764}) {
		t.Error("exclusion applies even alongside allowed genres")
	}
	if !IsExcludedTVShow(122843) {
		t.Error("fixed exclusion list should match")
	}
	if IsExcludedTVShow(1418) {
		t.Error("ordinary shows are not excluded")
	}
}
