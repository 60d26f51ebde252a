package mlb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/StevenBlack/pitchers/internal/pitch"
)

// Feed is the slice of the live game feed we consume: the play-by-play
// with per-play pitcher matchups and per-pitch events.
type Feed struct {
	GamePk   int64 `json:"gamePk"`
	LiveData struct {
		Plays struct {
			AllPlays []Play `json:"allPlays"`
		} `json:"plays"`
	} `json:"liveData"`
}

// Play is a single plate appearance with its pitch-level events.
type Play struct {
	Matchup struct {
		Pitcher struct {
			ID       int64  `json:"id"`
			FullName string `json:"fullName"`
			Team     struct {
				Name string `json:"name"`
			} `json:"team"`
		} `json:"pitcher"`
	} `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
}

// PlayEvent is one event within a play: a pitch, a pickoff, a mound
// visit, and so on. Only pitches carry pitch-type details we care about.
type PlayEvent struct {
	IsPitch   *bool           `json:"isPitch"`
	PitchData json.RawMessage `json:"pitchData"`
	Details   struct {
		Type *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"type"`
		Description string `json:"description"`
	} `json:"details"`
}

// GameFeed fetches the live feed for a game.
func (c *Client) GameFeed(ctx context.Context, gamePk int64) (*Feed, error) {
	var feed Feed
	path := fmt.Sprintf("/api/v1.1/game/%d/feed/live", gamePk)
	if err := c.get(ctx, path, nil, &feed); err != nil {
		return nil, fmt.Errorf("fetch game feed: %w", err)
	}
	return &feed, nil
}

// PitchEvents extracts the flat pitch-event records from a feed.
// Non-pitch play events are skipped; pitch labels are normalized to
// canonical pitch-type names via NormalizePitchLabel.
func PitchEvents(feed *Feed) []pitch.Event {
	var events []pitch.Event
	for _, play := range feed.LiveData.Plays.AllPlays {
		pitcher := play.Matchup.Pitcher.FullName
		if pitcher == "" {
			pitcher = "Unknown pitcher"
		}
		team := play.Matchup.Pitcher.Team.Name

		for _, ev := range play.PlayEvents {
			if !isPitchEvent(ev) {
				continue
			}
			events = append(events, pitch.Event{
				PitcherName: pitcher,
				Team:        team,
				PitchType:   NormalizePitchLabel(pitchLabel(ev)),
			})
		}
	}
	return events
}

// isPitchEvent reports whether a play event is an actual pitch. The feed
// marks these with isPitch; older feeds omit the flag, in which case the
// presence of pitchData is the signal.
func isPitchEvent(ev PlayEvent) bool {
	if ev.IsPitch != nil {
		return *ev.IsPitch
	}
	return len(ev.PitchData) > 0
}

// pitchLabel returns the raw pitch label for an event: the pitch type
// description when present, else the event description.
func pitchLabel(ev PlayEvent) string {
	if ev.Details.Type != nil && ev.Details.Type.Description != "" {
		return ev.Details.Type.Description
	}
	return ev.Details.Description
}
