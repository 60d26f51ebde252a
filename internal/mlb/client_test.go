package mlb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StevenBlack/pitchers/internal/pitch"
)

const scheduleFixture = `{
	"dates": [
		{
			"date": "2026-08-28",
			"games": [
				{
					"gamePk": 813026,
					"teams": {
						"home": {"team": {"name": "Los Angeles Dodgers"}},
						"away": {"team": {"name": "San Diego Padres"}}
					}
				},
				{
					"gamePk": 813027,
					"teams": {
						"home": {"team": {"name": "New York Yankees"}},
						"away": {"team": {"name": "Boston Red Sox"}}
					}
				}
			]
		}
	]
}`

const feedFixture = `{
	"gamePk": 813026,
	"liveData": {
		"plays": {
			"allPlays": [
				{
					"matchup": {
						"pitcher": {
							"id": 808967,
							"fullName": "Yoshinobu Yamamoto",
							"team": {"name": "Los Angeles Dodgers"}
						}
					},
					"playEvents": [
						{
							"isPitch": true,
							"details": {"type": {"code": "FF", "description": "Four-Seam Fastball"}}
						},
						{
							"isPitch": true,
							"details": {"type": {"code": "FS", "description": "Splitter"}}
						},
						{
							"isPitch": false,
							"details": {"description": "Pickoff Attempt 1B"}
						},
						{
							"pitchData": {"startSpeed": 95.2},
							"details": {"description": "Four-Seam Fastball"}
						}
					]
				},
				{
					"matchup": {
						"pitcher": {"id": 701542, "fullName": "Robert Suarez", "team": {"name": "San Diego Padres"}}
					},
					"playEvents": [
						{
							"isPitch": true,
							"details": {"type": {"code": "CH", "description": "Changeup"}}
						}
					]
				}
			]
		}
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 6000, nil)
}

func TestFindGamePk(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/schedule", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("sportId"))
		require.Equal(t, "2026-08-28", r.URL.Query().Get("date"))
		w.Write([]byte(scheduleFixture))
	})

	tests := []struct {
		name    string
		home    string
		away    string
		want    int64
		wantErr bool
	}{
		{name: "no filters takes first game", want: 813026},
		{name: "home filter", home: "yankees", want: 813027},
		{name: "away filter", away: "padres", want: 813026},
		{name: "both filters", home: "dodgers", away: "padres", want: 813026},
		{name: "filter is case-insensitive substring", home: "DODG", want: 813026},
		{name: "no match", home: "mets", wantErr: true},
		{name: "filters must match the same game", home: "yankees", away: "padres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk, err := c.FindGamePk(context.Background(), "2026-08-28", tt.home, tt.away)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, pk)
		})
	}
}

func TestGameFeedAndPitchEvents(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1.1/game/813026/feed/live", r.URL.Path)
		w.Write([]byte(feedFixture))
	})

	feed, err := c.GameFeed(context.Background(), 813026)
	require.NoError(t, err)
	require.Equal(t, int64(813026), feed.GamePk)

	events := PitchEvents(feed)
	require.Equal(t, []pitch.Event{
		{PitcherName: "Yoshinobu Yamamoto", Team: "Los Angeles Dodgers", PitchType: "fastball"},
		{PitcherName: "Yoshinobu Yamamoto", Team: "Los Angeles Dodgers", PitchType: "splitter"},
		// The pickoff is skipped; the event with pitchData but no isPitch
		// flag counts as a pitch.
		{PitcherName: "Yoshinobu Yamamoto", Team: "Los Angeles Dodgers", PitchType: "fastball"},
		{PitcherName: "Robert Suarez", Team: "San Diego Padres", PitchType: "changeup"},
	}, events)
}

func TestPitchEvents_MissingPitcherName(t *testing.T) {
	feed := &Feed{}
	feed.LiveData.Plays.AllPlays = []Play{
		{
			PlayEvents: []PlayEvent{
				{IsPitch: boolPtr(true)},
			},
		},
	}
	events := PitchEvents(feed)
	require.Len(t, events, 1)
	require.Equal(t, "Unknown pitcher", events[0].PitcherName)
	require.Equal(t, "unknown", events[0].PitchType)
}

func TestClient_Non200(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := c.GameFeed(context.Background(), 813026)
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "upstream exploded")
}

func TestClient_ContextCancelled(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GameFeed(ctx, 813026)
	require.Error(t, err)
}

func boolPtr(b bool) *bool { return &b }
