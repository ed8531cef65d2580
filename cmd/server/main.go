// Six Degrees of Movie Separation - Actor Connection Game API
// Copyright 2026 Marco Santos (MarcoSantos2)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MarcoSantos2/six-degrees-of-separation-2

// Package main is the entry point for the Six Degrees game API server.
//
// The server backs a browser game in which players connect two actors
// through shared film and TV credits. It aggregates a third-party media
// catalog (TMDB) behind a rate limiter, circuit breaker and response cache,
// and manages game session state with durable snapshots.
//
// # Application Architecture
//
// Components are initialized in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, config.yaml,
//     environment variables)
//  2. Logging: zerolog, console or JSON format
//  3. Session store: Badger-backed snapshots for crash recovery
//  4. Catalog client: rate-limited TMDB client, optionally wrapped in a
//     circuit breaker
//  5. Aggregation service: cached filmography, cast and popularity queries
//  6. HTTP server: Chi router under a suture supervision tree
//
// # Configuration
//
// The only required setting is the catalog API key:
//
//	export TMDB_API_KEY=your-api-key
//	./sixdegrees
//
// Common optional settings:
//
//	export HTTP_PORT=3001
//	export CORS_ORIGINS=http://localhost:5173
//	export TMDB_REQUESTS_PER_SECOND=3
//	export CACHE_TTL=1h
//	export GAME_SNAPSHOT_DIR=/data/sessions
//	export LOG_LEVEL=debug
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops
// accepting connections, in-flight requests get the configured shutdown
// timeout, live sessions take a final snapshot, and the store closes.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/aggregate"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/api"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/cache"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/config"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/game"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/logging"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/ratelimit"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/supervisor"
	"github.com/MarcoSantos2/six-degrees-of-separation-2/internal/tmdb"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Int("requests_per_second", cfg.TMDB.RequestsPerSecond).
		Bool("circuit_breaker", cfg.TMDB.CircuitBreakerEnabled).
		Msg("Starting Six Degrees game API")

	// Session snapshot store. Sessions survive restarts; timers do not
	// auto-resume.
	store, err := game.OpenStore(cfg.Game.SnapshotDir, cfg.Game.SnapshotInMemory)
	if err != nil {
		logging.Fatal().Err(err).Str("dir", cfg.Game.SnapshotDir).
			Msg("Failed to open session store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	// Aggregation cache with background expiry.
	responseCache := cache.New(cfg.Cache.TTL)
	defer responseCache.Stop()

	// Catalog client: every outbound call passes the request-per-second
	// limiter; the circuit breaker sheds load during upstream outages.
	limiter := ratelimit.New(cfg.TMDB.RequestsPerSecond, time.Second)
	var catalogClient tmdb.API = tmdb.NewClient(&cfg.TMDB, limiter)
	if cfg.TMDB.CircuitBreakerEnabled {
		catalogClient = tmdb.NewBreakerClient(catalogClient)
	}

	catalog := aggregate.NewService(catalogClient, responseCache, &cfg.Game)

	sessions := game.NewManager(store)
	defer sessions.Close()

	// HTTP surface.
	handler := api.NewHandler(catalog, sessions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Supervision tree: the HTTP server and the snapshot GC loop restart
	// independently on failure. sutureslog bridges events into zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(supervisor.NewGCService(store, 0))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree exited")
	}

	logging.Info().Msg("Shutdown complete")
}
