package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/StevenBlack/pitchers/internal/cache"
	"github.com/StevenBlack/pitchers/internal/config"
	"github.com/StevenBlack/pitchers/internal/mlb"
	"github.com/StevenBlack/pitchers/internal/pitch"
)

type stubSource struct {
	feed *mlb.Feed
	err  error
}

func (s *stubSource) GameFeed(ctx context.Context, gamePk int64) (*mlb.Feed, error) {
	return s.feed, s.err
}

func feedFromJSON(t *testing.T, raw string) *mlb.Feed {
	t.Helper()
	var feed mlb.Feed
	require.NoError(t, json.Unmarshal([]byte(raw), &feed))
	return &feed
}

func testConfig() *config.Config {
	return &config.Config{
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		RateLimitEnabled: false,
		CORSAllowOrigins: []string{"*"},
	}
}

const testFeed = `{
	"gamePk": 813026,
	"liveData": {"plays": {"allPlays": [
		{
			"matchup": {"pitcher": {"fullName": "Yoshinobu Yamamoto", "team": {"name": "Los Angeles Dodgers"}}},
			"playEvents": [
				{"isPitch": true, "details": {"type": {"code": "FF", "description": "Four-Seam Fastball"}}},
				{"isPitch": true, "details": {"type": {"code": "FS", "description": "Splitter"}}},
				{"isPitch": true, "details": {"type": {"code": "FS", "description": "Splitter"}}}
			]
		}
	]}}
}`

func TestGetGamePitches(t *testing.T) {
	router := NewRouter(&stubSource{feed: feedFromJSON(t, testFeed)}, cache.New(true), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/813026/pitches", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	var report pitch.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Pitchers, 1)
	require.Equal(t, "Yoshinobu Yamamoto", report.Pitchers[0].Name)
	require.Equal(t, 3, report.Pitchers[0].Total)
	require.Equal(t, pitch.CategoryOffspeed, report.Pitchers[0].Categories[0].Name)

	// Second request hits the cache.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/813026/pitches", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))

	// Matching If-None-Match short-circuits to 304.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/games/813026/pitches", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestGetGamePitches_InvalidGamePk(t *testing.T) {
	router := NewRouter(&stubSource{}, cache.New(true), testConfig())

	for _, path := range []string{
		"/api/v1/games/abc/pitches",
		"/api/v1/games/-1/pitches",
		"/api/v1/games/0/pitches",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetGamePitches_UnknownPitchType(t *testing.T) {
	feed := feedFromJSON(t, `{
		"liveData": {"plays": {"allPlays": [
			{
				"matchup": {"pitcher": {"fullName": "A"}},
				"playEvents": [{"isPitch": true, "details": {"type": {"description": "Eephus"}}}]
			}
		]}}
	}`)
	router := NewRouter(&stubSource{feed: feed}, cache.New(true), testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/1/pitches", nil))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code   string `json:"code"`
			Detail string `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "UNKNOWN_PITCH_TYPE", body.Error.Code)
	require.Equal(t, "Eephus", body.Error.Detail)
}

func TestGetGamePitches_UpstreamError(t *testing.T) {
	router := NewRouter(&stubSource{err: errors.New("boom")}, cache.New(true), testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/1/pitches", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := NewRouter(&stubSource{}, cache.New(true), testConfig())

	for _, path := range []string{"/", "/health", "/health/cache"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
