// Package pitch turns a flat sequence of pitch events into a nested,
// sorted per-pitcher summary. It is pure computation: no I/O, no logging,
// no knowledge of where events came from or how the report is shown.
package pitch

// Event is one recorded pitch: who threw it and what it was.
// Team is display-only; it never participates in grouping or ordering.
type Event struct {
	PitcherName string `json:"pitcher_name"`
	Team        string `json:"team,omitempty"`
	PitchType   string `json:"pitch_type"`
}

// Report is the full summary for one game, pitchers ordered by
// descending total pitch count.
type Report struct {
	Pitchers []PitcherSummary `json:"pitchers"`
}

// PitcherSummary is one pitcher's pitch counts, grouped by category.
type PitcherSummary struct {
	Name       string            `json:"name"`
	Team       string            `json:"team,omitempty"`
	Total      int               `json:"total"`
	Categories []CategorySummary `json:"categories"`
}

// CategorySummary is one category's counts for a single pitcher.
type CategorySummary struct {
	Name  string        `json:"name"`
	Total int           `json:"total"`
	Types []TypeSummary `json:"types"`
}

// TypeSummary is the count for one exact pitch type.
type TypeSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
