package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/StevenBlack/pitchers/internal/api/respond"
	"github.com/StevenBlack/pitchers/internal/cache"
	"github.com/StevenBlack/pitchers/internal/metrics"
	"github.com/StevenBlack/pitchers/internal/mlb"
	"github.com/StevenBlack/pitchers/internal/pitch"
)

// GetGamePitches serves the per-pitcher pitch summary for a game.
//
// GET /api/v1/games/{gamePk}/pitches
//
// Responses are cached by gamePk with ETag support; a matching
// If-None-Match short-circuits to 304.
func (h *Handler) GetGamePitches(w http.ResponseWriter, r *http.Request) {
	gamePk, err := strconv.ParseInt(chi.URLParam(r, "gamePk"), 10, 64)
	if err != nil || gamePk <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_GAME_PK", "gamePk must be a positive integer")
		return
	}

	key := fmt.Sprintf("pitches:%d", gamePk)
	if data, etag, ok := h.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		if cacheMatch(r, etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, h.cfg.CacheTTL, true)
		return
	}
	metrics.CacheMisses.Inc()

	feed, err := h.source.GameFeed(r.Context(), gamePk)
	if err != nil {
		metrics.UpstreamErrors.Inc()
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_ERROR",
			"Failed to fetch game feed from MLB statsapi", err.Error())
		return
	}

	report, err := pitch.Aggregate(mlb.PitchEvents(feed))
	if err != nil {
		var unknownErr *pitch.UnknownPitchTypeError
		if errors.As(err, &unknownErr) {
			respond.WriteErrorDetail(w, http.StatusUnprocessableEntity, "UNKNOWN_PITCH_TYPE",
				"Game feed contains a pitch type with no category mapping", unknownErr.PitchType)
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "AGGREGATION_FAILED", err.Error())
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", err.Error())
		return
	}

	etag := h.cache.Set(key, data, h.cfg.CacheTTL)
	if cacheMatch(r, etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, h.cfg.CacheTTL, false)
}

func cacheMatch(r *http.Request, etag string) bool {
	return cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag)
}
