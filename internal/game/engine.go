// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package game implements the turn-based session engine: a pure transition
// function over session state, a Session owner that serializes event
// dispatch and drives the countdown timer, and a badger-backed snapshot
// store for rehydration.
package game

import (
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// Status is the lifecycle phase of a round.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether the round is over. Terminal states are
// idempotent: selection and tick events no longer change anything.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Settings are the per-round rules, fixed at session creation and
// preserved across resets.
type Settings struct {
	RegionFilterEnabled bool               `json:"region_filter_enabled"`
	MediaFilter         models.MediaFilter `json:"media_filter"`
	MoveLimitEnabled    bool               `json:"move_limit_enabled"`
	MoveLimit           int                `json:"move_limit"`
	TimerEnabled        bool               `json:"timer_enabled"`
	TimerSeconds        int                `json:"timer_seconds"`
	Theme               string             `json:"theme"`
}

// DefaultSettings returns the rules used when a session is created
// without explicit settings.
func DefaultSettings() Settings {
	return Settings{
		RegionFilterEnabled: true,
		MediaFilter:         models.FilterAllMedia,
		MoveLimitEnabled:    true,
		MoveLimit:           6,
		TimerEnabled:        false,
		TimerSeconds:        300,
		Theme:               "light",
	}
}

// PathStep is one node of the player's traversal. Media is the title the
// player selected while standing on this actor; it is nil on the newest
// step until the player picks one, and stays nil forever on the final
// step of a finished round.
type PathStep struct {
	Actor models.Person     `json:"actor"`
	Media *models.MediaItem `json:"media,omitempty"`
}

// State is the complete session state. It is only ever changed by
// Transition; Status never diverges from what the path, target and
// settings imply.
type State struct {
	Status           Status         `json:"status"`
	Settings         Settings       `json:"settings"`
	TargetActor      *models.Person `json:"target_actor,omitempty"`
	Path             []PathStep     `json:"path"`
	RemainingSeconds int            `json:"remaining_seconds"`
	TimerRunning     bool           `json:"timer_running"`
}

// NewState returns the pre-game state for the given settings.
func NewState(settings Settings) State {
	return State{
		Status:   StatusNotStarted,
		Settings: settings,
		Path:     []PathStep{},
	}
}

// Moves is the number of actor selections made so far. The starting actor
// does not count as a move.
func (s State) Moves() int {
	if len(s.Path) == 0 {
		return 0
	}
	return len(s.Path) - 1
}

// CurrentActor returns the actor the player is standing on, or nil before
// the round starts.
func (s State) CurrentActor() *models.Person {
	if len(s.Path) == 0 {
		return nil
	}
	return &s.Path[len(s.Path)-1].Actor
}

// EventType discriminates session events.
type EventType string

const (
	EventSetTarget   EventType = "set_target"
	EventStart       EventType = "start"
	EventSelectMedia EventType = "select_media"
	EventSelectActor EventType = "select_actor"
	EventTick        EventType = "tick"
	EventPauseTimer  EventType = "pause_timer"
	EventResumeTimer EventType = "resume_timer"
	EventReset       EventType = "reset"
)

// Event is one dispatched session event. Actor is required for set_target,
// start and select_actor; Media for select_media.
type Event struct {
	Type  EventType         `json:"type"`
	Actor *models.Person    `json:"actor,omitempty"`
	Media *models.MediaItem `json:"media,omitempty"`
}

// Transition applies an event to a state and returns the next state. It is
// pure: the input state is never mutated, and events whose preconditions
// do not hold return the state unchanged rather than erroring.
func Transition(state State, event Event) State {
	switch event.Type {
	case EventSetTarget:
		return applySetTarget(state, event)
	case EventStart:
		return applyStart(state, event)
	case EventSelectMedia:
		return applySelectMedia(state, event)
	case EventSelectActor:
		return applySelectActor(state, event)
	case EventTick:
		return applyTick(state)
	case EventPauseTimer:
		return applyPause(state)
	case EventResumeTimer:
		return applyResume(state)
	case EventReset:
		return applyReset(state)
	default:
		return state
	}
}

func applySetTarget(state State, event Event) State {
	if event.Actor == nil {
		return state
	}
	if state.TargetActor != nil && state.TargetActor.ID == event.Actor.ID {
		return state
	}
	target := *event.Actor
	state.TargetActor = &target
	return state
}

func applyStart(state State, event Event) State {
	if state.Status != StatusNotStarted || state.TargetActor == nil || event.Actor == nil {
		return state
	}

	state.Path = []PathStep{{Actor: *event.Actor}}
	state.Status = StatusInProgress
	state.RemainingSeconds = 0
	state.TimerRunning = false

	// A one-move budget cannot be met from a non-target start: the round
	// is decided before it begins.
	if state.Settings.MoveLimitEnabled && state.Settings.MoveLimit == 1 &&
		event.Actor.ID != state.TargetActor.ID {
		state.Status = StatusLost
		return state
	}

	if state.Settings.TimerEnabled {
		state.RemainingSeconds = state.Settings.TimerSeconds
		state.TimerRunning = true
	}
	return state
}

func applySelectMedia(state State, event Event) State {
	if state.Status != StatusInProgress || event.Media == nil || len(state.Path) == 0 {
		return state
	}
	path := clonePath(state.Path)
	media := *event.Media
	path[len(path)-1].Media = &media
	state.Path = path
	return state
}

func applySelectActor(state State, event Event) State {
	if state.Status != StatusInProgress || event.Actor == nil || len(state.Path) == 0 {
		return state
	}
	// An actor is reached through a title; selecting one before any media
	// is chosen has no meaning.
	if state.Path[len(state.Path)-1].Media == nil {
		return state
	}

	path := clonePath(state.Path)
	path = append(path, PathStep{Actor: *event.Actor})
	state.Path = path

	switch {
	case state.TargetActor != nil && event.Actor.ID == state.TargetActor.ID:
		state.Status = StatusWon
		state.TimerRunning = false
	case state.Settings.MoveLimitEnabled && state.Moves() >= state.Settings.MoveLimit:
		state.Status = StatusLost
		state.TimerRunning = false
	}
	return state
}

func applyTick(state State) State {
	if state.Status != StatusInProgress || !state.Settings.TimerEnabled ||
		!state.TimerRunning || state.RemainingSeconds <= 0 {
		return state
	}
	state.RemainingSeconds--
	if state.RemainingSeconds <= 0 {
		state.Status = StatusLost
		state.TimerRunning = false
	}
	return state
}

func applyPause(state State) State {
	if state.Status != StatusInProgress || !state.Settings.TimerEnabled {
		return state
	}
	state.TimerRunning = false
	return state
}

func applyResume(state State) State {
	if state.Status != StatusInProgress || !state.Settings.TimerEnabled ||
		state.RemainingSeconds <= 0 {
		return state
	}
	state.TimerRunning = true
	return state
}

// applyReset reinitializes path, status and timer. Settings and the
// current target survive; picking a fresh target is a separate event.
func applyReset(state State) State {
	return State{
		Status:      StatusNotStarted,
		Settings:    state.Settings,
		TargetActor: state.TargetActor,
		Path:        []PathStep{},
	}
}

// clonePath copies the path slice so Transition never aliases the input
// state's backing array.
func clonePath(path []PathStep) []PathStep {
	out := make([]PathStep, len(path))
	copy(out, path)
	return out
}
