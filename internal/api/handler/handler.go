// Package handler provides HTTP handlers for all API endpoints.
// Handlers fetch the game feed through a GameSource, run the aggregation,
// and cache the marshaled report — no service layer.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/StevenBlack/pitchers/internal/api/respond"
	"github.com/StevenBlack/pitchers/internal/cache"
	"github.com/StevenBlack/pitchers/internal/config"
	"github.com/StevenBlack/pitchers/internal/mlb"
)

// GameSource fetches the live feed for a game. Satisfied by *mlb.Client.
type GameSource interface {
	GameFeed(ctx context.Context, gamePk int64) (*mlb.Feed, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	source GameSource
	cache  *cache.Cache
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(source GameSource, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		source: source,
		cache:  c,
		cfg:    cfg,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Pitchers API",
		"version": "0.1.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
