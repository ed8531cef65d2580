// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/game"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// createSessionRequest is the optional body of POST /api/session. Absent
// fields fall back to the default settings.
type createSessionRequest struct {
	RegionFilterEnabled *bool  `json:"region_filter_enabled"`
	MediaFilter         string `json:"media_filter" validate:"omitempty,oneof=ALL_MEDIA MOVIES_ONLY TV_ONLY"`
	MoveLimitEnabled    *bool  `json:"move_limit_enabled"`
	MoveLimit           *int   `json:"move_limit" validate:"omitempty,min=1,max=20"`
	TimerEnabled        *bool  `json:"timer_enabled"`
	TimerSeconds        *int   `json:"timer_seconds" validate:"omitempty,min=10,max=3600"`
	Theme               string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// settings merges the request over the defaults.
func (req *createSessionRequest) settings() game.Settings {
	settings := game.DefaultSettings()
	if req.RegionFilterEnabled != nil {
		settings.RegionFilterEnabled = *req.RegionFilterEnabled
	}
	if req.MediaFilter != "" {
		settings.MediaFilter = models.MediaFilter(req.MediaFilter)
	}
	if req.MoveLimitEnabled != nil {
		settings.MoveLimitEnabled = *req.MoveLimitEnabled
	}
	if req.MoveLimit != nil {
		settings.MoveLimit = *req.MoveLimit
	}
	if req.TimerEnabled != nil {
		settings.TimerEnabled = *req.TimerEnabled
	}
	if req.TimerSeconds != nil {
		settings.TimerSeconds = *req.TimerSeconds
	}
	if req.Theme != "" {
		settings.Theme = req.Theme
	}
	return settings
}

// sessionEventRequest is the body of POST /api/session/{id}/events.
type sessionEventRequest struct {
	Type  string            `json:"type" validate:"required,oneof=set_target start select_media select_actor tick pause_timer resume_timer reset"`
	Actor *models.Person    `json:"actor"`
	Media *models.MediaItem `json:"media"`
}

// sessionResponse is the wire shape of one game session.
type sessionResponse struct {
	ID    string     `json:"id"`
	State game.State `json:"state"`
}

// CreateSession handles POST /api/session. An empty body creates a session
// with default settings.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	// An entirely empty body is fine; malformed JSON is not.
	var req createSessionRequest
	if err := decodeJSONBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	session := h.sessions.Create(req.settings())
	logging.Ctx(r.Context()).Info().
		Str("session_id", session.ID).
		Msg("Session created")

	respondSuccess(w, sessionResponse{ID: session.ID, State: session.State()}, started, false)
}

// GetSession handles GET /api/session/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	session, err := h.lookupSession(w, r)
	if err != nil {
		return
	}

	respondSuccess(w, sessionResponse{ID: session.ID, State: session.State()}, started, false)
}

// SessionEvents handles POST /api/session/{id}/events. The event is applied
// through the transition function and the resulting state returned; illegal
// events for the current state are no-ops, not errors.
func (h *Handler) SessionEvents(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	session, err := h.lookupSession(w, r)
	if err != nil {
		return
	}

	var req sessionEventRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	state := session.Dispatch(game.Event{
		Type:  game.EventType(req.Type),
		Actor: req.Actor,
		Media: req.Media,
	})

	respondSuccess(w, sessionResponse{ID: session.ID, State: state}, started, false)
}

// ResetSession handles POST /api/session/{id}/reset. Settings and target
// survive; path, status and timer are reinitialized.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	session, err := h.lookupSession(w, r)
	if err != nil {
		return
	}

	state := session.Dispatch(game.Event{Type: game.EventReset})

	respondSuccess(w, sessionResponse{ID: session.ID, State: state}, started, false)
}

// lookupSession resolves the {id} URL parameter to a live session, writing
// the error response itself when the session does not exist.
func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (*game.Session, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Session id is required", nil)
		return nil, game.ErrSessionNotFound
	}

	session, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to load session", err)
		}
		return nil, err
	}
	return session, nil
}
