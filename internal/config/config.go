// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package config holds all application configuration loaded from a YAML file
// and environment variables via Koanf v2.
//
// Configuration Loading Order:
//  1. Defaults: built-in sensible defaults for every optional setting
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the game API server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	TMDB    TMDBConfig    `koanf:"tmdb"`
	Cache   CacheConfig   `koanf:"cache"`
	Game    GameConfig    `koanf:"game"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 3001)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: per-IP requests per window (default: 100)
//   - RATE_LIMIT_WINDOW: window duration (default: 1m)
//   - DISABLE_RATE_LIMIT: disable per-IP limiting (default: false)
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// TMDBConfig holds upstream catalog API settings.
//
// Environment Variables:
//   - TMDB_API_KEY: catalog API key (required)
//   - TMDB_BASE_URL: catalog base URL (default: https://api.themoviedb.org/3)
//   - TMDB_LANGUAGE: response language (default: en-US)
//   - TMDB_REQUESTS_PER_SECOND: outbound request budget per one-second
//     window (default: 3)
//   - TMDB_REQUEST_TIMEOUT: per-request timeout (default: 10s)
//   - TMDB_CIRCUIT_BREAKER: wrap the client in a circuit breaker
//     (default: true)
type TMDBConfig struct {
	APIKey                string        `koanf:"api_key"`
	BaseURL               string        `koanf:"base_url"`
	Language              string        `koanf:"language"`
	RequestsPerSecond     int           `koanf:"requests_per_second"`
	RequestTimeout        time.Duration `koanf:"request_timeout"`
	CircuitBreakerEnabled bool          `koanf:"circuit_breaker_enabled"`
}

// CacheConfig holds aggregation cache settings.
//
// Environment Variables:
//   - CACHE_TTL: entry time-to-live (default: 1h)
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// GameConfig holds game session and actor-selection settings.
//
// Environment Variables:
//   - GAME_SNAPSHOT_DIR: session snapshot store directory (default: /data/sessions)
//   - GAME_SNAPSHOT_IN_MEMORY: keep snapshots in memory only (default: false)
//   - GAME_POPULAR_PAGE_CEILING: highest popular-people page sampled (default: 10)
//   - GAME_HOME_REGIONS: comma-separated birthplace substrings for the
//     home-region filter
//   - GAME_FALLBACK_TARGET_ID: target person used when popular selection fails
type GameConfig struct {
	SnapshotDir        string   `koanf:"snapshot_dir"`
	SnapshotInMemory   bool     `koanf:"snapshot_in_memory"`
	PopularPageCeiling int      `koanf:"popular_page_ceiling"`
	HomeRegions        []string `koanf:"home_regions"`
	FallbackTargetID   int      `koanf:"fallback_target_id"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace/debug/info/warn/error (default: info)
//   - LOG_FORMAT: json/console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("rate limit requests must be positive, got %d", c.Server.RateLimitReqs)
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %s", c.Server.RateLimitWindow)
	}
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb base URL must not be empty")
	}
	if c.TMDB.RequestsPerSecond < 1 {
		return fmt.Errorf("tmdb requests per second must be positive, got %d", c.TMDB.RequestsPerSecond)
	}
	if c.TMDB.RequestTimeout <= 0 {
		return fmt.Errorf("tmdb request timeout must be positive, got %s", c.TMDB.RequestTimeout)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.Game.PopularPageCeiling < 1 {
		return fmt.Errorf("popular page ceiling must be positive, got %d", c.Game.PopularPageCeiling)
	}
	if c.Game.FallbackTargetID < 1 {
		return fmt.Errorf("fallback target ID must be positive, got %d", c.Game.FallbackTargetID)
	}
	if !c.Game.SnapshotInMemory && c.Game.SnapshotDir == "" {
		return fmt.Errorf("snapshot directory is required unless snapshots are in-memory")
	}
	if len(c.Game.HomeRegions) == 0 {
		return fmt.Errorf("at least one home region is required")
	}
	return nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
