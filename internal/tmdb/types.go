// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package tmdb

// Response structs mirror the upstream catalog's JSON wire format. Field
// names and shapes follow the upstream API, not this application's domain
// model; conversion happens in the aggregate package.

// PersonDetails is the /person/{id} response.
type PersonDetails struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	PlaceOfBirth       *string `json:"place_of_birth"`
}

// ProfileImage is one entry of a person's image gallery.
type ProfileImage struct {
	FilePath    string  `json:"file_path"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
}

// PersonImages is the /person/{id}/images response.
type PersonImages struct {
	ID       int            `json:"id"`
	Profiles []ProfileImage `json:"profiles"`
}

// MovieCredit is one film in a person's movie credits.
type MovieCredit struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	Character   string  `json:"character"`
	Popularity  float64 `json:"popularity"`
}

// MovieCredits is the /person/{id}/movie_credits response.
type MovieCredits struct {
	ID   int           `json:"id"`
	Cast []MovieCredit `json:"cast"`
}

// TVCredit is one series in a person's TV credits.
type TVCredit struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
	GenreIDs     []int   `json:"genre_ids"`
	Character    string  `json:"character"`
	EpisodeCount int     `json:"episode_count"`
}

// TVCredits is the /person/{id}/tv_credits response.
type TVCredits struct {
	ID   int        `json:"id"`
	Cast []TVCredit `json:"cast"`
}

// CastMember is one performer entry in a credits list.
type CastMember struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	Character          string  `json:"character"`
	Order              int     `json:"order"`
}

// MediaCredits is the /movie/{id}/credits and /tv/{id}/aggregate-free
// /tv/{id}/credits response (main billed cast only).
type MediaCredits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
}

// Genre is a catalog genre descriptor.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SeasonSummary is one season entry inside TVDetails.
type SeasonSummary struct {
	SeasonNumber int `json:"season_number"`
	EpisodeCount int `json:"episode_count"`
}

// TVDetails is the /tv/{id} response.
type TVDetails struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	FirstAirDate     string          `json:"first_air_date"`
	PosterPath       *string         `json:"poster_path"`
	Genres           []Genre         `json:"genres"`
	Seasons          []SeasonSummary `json:"seasons"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
}

// GenreIDs flattens the detail response's genre objects into the ID list
// used by the admission rules.
func (d *TVDetails) GenreIDs() []int {
	ids := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// EpisodeSummary is one episode entry inside SeasonDetails.
type EpisodeSummary struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
}

// SeasonDetails is the /tv/{id}/season/{n} response.
type SeasonDetails struct {
	ID           int              `json:"id"`
	SeasonNumber int              `json:"season_number"`
	Episodes     []EpisodeSummary `json:"episodes"`
}

// EpisodeCredits is the /tv/{id}/season/{n}/episode/{m}/credits response.
// GuestStars carries performers not in the series' main billing.
type EpisodeCredits struct {
	ID         int          `json:"id"`
	Cast       []CastMember `json:"cast"`
	GuestStars []CastMember `json:"guest_stars"`
}

// PopularPerson is one entry of the popular-people listing.
type PopularPerson struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// PopularPage is the /person/popular response.
type PopularPage struct {
	Page         int             `json:"page"`
	Results      []PopularPerson `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

// ReleaseDate is one certification entry of a regional release.
type ReleaseDate struct {
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Type          int    `json:"type"`
}

// RegionalReleases groups a movie's release dates by country.
type RegionalReleases struct {
	ISO3166_1    string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// ReleaseDatesResponse is the /movie/{id}/release_dates response.
type ReleaseDatesResponse struct {
	ID      int                `json:"id"`
	Results []RegionalReleases `json:"results"`
}

// MovieResult is one film in a /search/movie page.
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	Popularity  float64 `json:"popularity"`
}

// SearchMoviePage is the /search/movie response.
type SearchMoviePage struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// TVResult is one series in a /search/tv page.
type TVResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity"`
}

// SearchTVPage is the /search/tv response.
type SearchTVPage struct {
	Page         int        `json:"page"`
	Results      []TVResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}
