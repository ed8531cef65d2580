// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/game"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/tmdb"
)

// Catalog is the aggregation surface the HTTP handlers depend on. The
// aggregate.Service satisfies it; tests substitute a stub.
type Catalog interface {
	TargetActor(ctx context.Context, regionFiltered bool) (*models.Person, error)
	PopularActors(ctx context.Context, regionFiltered bool) ([]models.Person, error)
	MediaForPerson(ctx context.Context, personID int, filter models.MediaFilter) ([]models.MediaItem, bool, error)
	SearchMedia(ctx context.Context, query string, filter models.MediaFilter) ([]models.MediaItem, error)
	Cast(ctx context.Context, kind models.MediaKind, id int) ([]models.Person, bool, error)
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	catalog   Catalog
	sessions  *game.Manager
	startTime time.Time
}

// NewHandler creates a handler backed by the given catalog aggregation
// service and game session manager.
func NewHandler(catalog Catalog, sessions *game.Manager) *Handler {
	return &Handler{
		catalog:   catalog,
		sessions:  sessions,
		startTime: time.Now(),
	}
}

// mediaRequest carries the validated query parameters of GET /api/media.
type mediaRequest struct {
	ActorID     int    `validate:"required,min=1"`
	MediaFilter string `validate:"omitempty,oneof=ALL_MEDIA MOVIES_ONLY TV_ONLY"`
}

// castRequest carries the validated query parameters of GET /api/cast.
type castRequest struct {
	MediaID   int    `validate:"required,min=1"`
	MediaType string `validate:"required,oneof=movie tv"`
}

// searchMediaRequest carries the validated query parameters of
// GET /api/search-media.
type searchMediaRequest struct {
	Query       string `validate:"required,min=1,max=200"`
	MediaFilter string `validate:"omitempty,oneof=ALL_MEDIA MOVIES_ONLY TV_ONLY"`
}

// popularActorsRequest carries the validated query parameters of
// GET /api/popular-actors. The media filter is accepted for UI symmetry
// with the other endpoints and validated, but the popular-people listing
// is not media-scoped so it does not change the pool.
type popularActorsRequest struct {
	MediaFilter string `validate:"omitempty,oneof=ALL_MEDIA MOVIES_ONLY TV_ONLY"`
}

// Target handles GET /api/target. It returns one random working actor to
// aim the round at, restricted to the configured home regions unless
// filterByWestern=false.
func (h *Handler) Target(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	regionFiltered := getBoolParamDefaultTrue(r, "filterByWestern")

	target, err := h.catalog.TargetActor(r.Context(), regionFiltered)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR",
			"Failed to pick a target actor", err)
		return
	}

	respondSuccess(w, target, started, false)
}

// Media handles GET /api/media. It returns the deduplicated, genre-admitted
// credits of one actor, scoped by the optional mediaFilter parameter.
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := mediaRequest{
		ActorID:     getIntParam(r, "actorId", 0),
		MediaFilter: r.URL.Query().Get("mediaFilter"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	filter, err := models.ParseMediaFilter(req.MediaFilter)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	items, cached, err := h.catalog.MediaForPerson(r.Context(), req.ActorID, filter)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Actor not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR",
			"Failed to fetch actor credits", err)
		return
	}

	respondSuccess(w, items, started, cached)
}

// Cast handles GET /api/cast. For movies this is the credited cast; for
// series it is the union of main cast and per-episode guests.
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := castRequest{
		MediaID:   getIntParam(r, "mediaId", 0),
		MediaType: r.URL.Query().Get("mediaType"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	kind, err := models.ParseMediaKind(req.MediaType)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	people, cached, err := h.catalog.Cast(r.Context(), kind, req.MediaID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Media not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR",
			"Failed to fetch cast", err)
		return
	}

	respondSuccess(w, people, started, cached)
}

// PopularActors handles GET /api/popular-actors. It returns up to 20
// working actors sampled from the popularity listing as starting-point
// suggestions.
func (h *Handler) PopularActors(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := popularActorsRequest{
		MediaFilter: r.URL.Query().Get("mediaFilter"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	regionFiltered := getBoolParamDefaultTrue(r, "filterByWestern")

	actors, err := h.catalog.PopularActors(r.Context(), regionFiltered)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR",
			"Failed to fetch popular actors", err)
		return
	}

	respondSuccess(w, actors, started, false)
}

// SearchMedia handles GET /api/search-media. Results pass the same genre
// admission pipeline as credit listings so searched series obey the same
// rules as browsed ones.
func (h *Handler) SearchMedia(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := searchMediaRequest{
		Query:       r.URL.Query().Get("query"),
		MediaFilter: r.URL.Query().Get("mediaFilter"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	filter, err := models.ParseMediaFilter(req.MediaFilter)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	items, err := h.catalog.SearchMedia(r.Context(), req.Query, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "UPSTREAM_ERROR",
			"Search failed", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(req.Query)).
		Int("results", len(items)).
		Msg("Media search served")

	respondSuccess(w, items, started, false)
}
