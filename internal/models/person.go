// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package models defines the domain types shared across the application:
// performers, the film/series tagged union, media filters, genre admission
// sets, and the standard API response envelope.
package models

// Person is a performer as returned by the catalog API.
//
// A Person is an immutable value object: it is created once from a catalog
// response and never mutated afterwards, only replaced. Identity is the
// catalog-unique ID.
//
// Fields:
//   - ID: catalog-unique person identifier
//   - Name: display name
//   - ProfilePath: primary profile image path (nil when the catalog has none)
//   - KnownForDepartment: catalog profession bucket (e.g. "Acting")
//   - Popularity: catalog popularity score
//   - PlaceOfBirth: free-form birthplace string, used by the home-region filter
//   - Images: additional profile image paths, populated best-effort during
//     film cast resolution (empty when the per-person lookup failed)
type Person struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	ProfilePath        *string  `json:"profile_path"`
	KnownForDepartment string   `json:"known_for_department,omitempty"`
	Popularity         float64  `json:"popularity,omitempty"`
	PlaceOfBirth       string   `json:"place_of_birth,omitempty"`
	Images             []string `json:"images,omitempty"`
}
