// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package models

// Genre admission sets for series credits. A series is kept only when it
// carries at least one allowed genre and no excluded genre; exclusion always
// wins over inclusion. IDs are the catalog's TV genre identifiers.

// AllowedTVGenres are the series genres admissible for gameplay.
var AllowedTVGenres = []int{
	10759, // Action & Adventure
	16,    // Animation
	35,    // Comedy
	80,    // Crime
	18,    // Drama
	10765, // Sci-Fi & Fantasy
	37,    // Western
	9648,  // Mystery
}

// ExcludedTVGenres disqualify a series even when an allowed genre is present.
var ExcludedTVGenres = []int{
	10767, // Talk
	10764, // Reality
	10763, // News
	10766, // Soap
	10762, // Kids
	10751, // Family
	99,    // Documentary
	10768, // War & Politics
}

// ExcludedTVShowIDs are individual series dropped unconditionally,
// regardless of their genres.
var ExcludedTVShowIDs = []int{
	122843, // Honest Trailers
}

var (
	allowedTVGenreSet  = toSet(AllowedTVGenres)
	excludedTVGenreSet = toSet(ExcludedTVGenres)
	excludedTVShowSet  = toSet(ExcludedTVShowIDs)
)

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// HasAllowedTVGenre reports whether any genre ID is in the allow set.
func HasAllowedTVGenre(genreIDs []int) bool {
	for _, id := range genreIDs {
		if _, ok := allowedTVGenreSet[id]; ok {
			return true
		}
	}
	return false
}

// HasExcludedTVGenre reports whether any genre ID is in the exclusion set.
func HasExcludedTVGenre(genreIDs []int) bool {
	for _, id := range genreIDs {
		if _, ok := excludedTVGenreSet[id]; ok {
			return true
		}
	}
	return false
}

// IsExcludedTVShow reports whether the series is on the fixed exclusion list.
func IsExcludedTVShow(id int) bool {
	_, ok := excludedTVShowSet[id]
	return ok
}
