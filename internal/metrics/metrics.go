// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package metrics provides Prometheus instrumentation for:
//   - HTTP endpoint latency and throughput
//   - catalog (TMDB) client calls and rate limiter waits
//   - aggregation cache efficiency
//   - circuit breaker state
//   - game session lifecycle and outcomes
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Catalog client metrics
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of upstream catalog API requests",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Upstream catalog request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CatalogRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limit_waits_total",
			Help: "Total number of catalog requests delayed by the rate limiter",
		},
	)

	CatalogRateLimitWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limit_wait_seconds_total",
			Help: "Cumulative seconds spent waiting on the catalog rate limiter",
		},
	)

	// Aggregation cache metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_cache_hits_total",
			Help: "Total number of aggregation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_cache_misses_total",
			Help: "Total number of aggregation cache misses",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_cache_evictions_total",
			Help: "Total number of expired aggregation cache entries removed",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aggregation_cache_entries",
			Help: "Current number of aggregation cache entries",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	// Game session metrics
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "game_sessions_active",
			Help: "Current number of live game sessions",
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "game_sessions_created_total",
			Help: "Total number of game sessions created",
		},
	)

	GameOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_outcomes_total",
			Help: "Total number of finished games by outcome",
		},
		[]string{"outcome"}, // "won", "lost"
	)
)

// RecordAPIRequest records metrics for a completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordCatalogRequest records metrics for a completed upstream catalog call.
func RecordCatalogRequest(endpoint, status string, duration time.Duration) {
	CatalogRequestsTotal.WithLabelValues(endpoint, status).Inc()
	CatalogRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordRateLimitWait records a rate limiter delay.
func RecordRateLimitWait(wait time.Duration) {
	CatalogRateLimitWaits.Inc()
	CatalogRateLimitWaitSeconds.Add(wait.Seconds())
}

// RecordGameOutcome records a finished game.
func RecordGameOutcome(outcome string) {
	GameOutcomes.WithLabelValues(outcome).Inc()
}
