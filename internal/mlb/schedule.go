package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// scheduleResponse mirrors the slice of /api/v1/schedule we consume.
type scheduleResponse struct {
	Dates []struct {
		Date  string `json:"date"`
		Games []struct {
			GamePk int64 `json:"gamePk"`
			Teams  struct {
				Home scheduleSide `json:"home"`
				Away scheduleSide `json:"away"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

type scheduleSide struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
}

// FindGamePk looks up the gamePk for a game on the given date
// (YYYY-MM-DD). homeFilter and awayFilter are optional case-insensitive
// substring matches against the team names; an empty filter matches any
// team. The first matching game wins.
func (c *Client) FindGamePk(ctx context.Context, date, homeFilter, awayFilter string) (int64, error) {
	params := url.Values{}
	params.Set("sportId", "1")
	params.Set("date", date)

	var resp scheduleResponse
	if err := c.get(ctx, "/api/v1/schedule", params, &resp); err != nil {
		return 0, fmt.Errorf("fetch schedule: %w", err)
	}

	for _, d := range resp.Dates {
		for _, g := range d.Games {
			if !matchesFilter(g.Teams.Home.Team.Name, homeFilter) {
				continue
			}
			if !matchesFilter(g.Teams.Away.Team.Name, awayFilter) {
				continue
			}
			return g.GamePk, nil
		}
	}

	return 0, fmt.Errorf("no matching game found for date %s (home=%q away=%q)", date, homeFilter, awayFilter)
}

func matchesFilter(teamName, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(teamName), strings.ToLower(filter))
}
