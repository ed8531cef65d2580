// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

package api

import (
	"net/http"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/models"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	Uptime         float64 `json:"uptime_seconds"`
	SessionsActive int     `json:"sessions_active"`
}

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Health handles GET /api/v1/health. The service has no hard runtime
// dependencies beyond the embedded session store, so a responding process
// is a healthy one; the payload adds version and session occupancy for
// operators.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:         "healthy",
		Version:        Version,
		Uptime:         time.Since(h.startTime).Seconds(),
		SessionsActive: h.sessions.Count(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style). Returns
// 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style). The
// session store is opened before the listener starts, so readiness follows
// liveness here; the endpoint exists so deployments can wire distinct
// probes without special-casing this service.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
