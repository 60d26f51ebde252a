package mlb

import "strings"

// pitchCodeNames maps statsapi pitch codes to canonical pitch-type names.
var pitchCodeNames = map[string]string{
	"FF":    "fastball",
	"FA":    "fastball",
	"FT":    "fastball",
	"FF/FT": "fastball",
	"SI":    "sinker",
	"SL":    "slider",
	"CU":    "curveball",
	"KC":    "curveball",
	"CH":    "changeup",
	"FC":    "cutter",
	"FS":    "splitter",
	"IN":    "intentional",
}

// NormalizePitchLabel maps a raw pitch label from the feed — a short
// code like "FF" or a full description like "Four-Seam Fastball" — to a
// canonical pitch-type name. Labels that match nothing pass through
// unchanged so the caller can decide how to treat them; an empty label
// becomes "unknown".
func NormalizePitchLabel(raw string) string {
	label := strings.TrimSpace(raw)
	if label == "" {
		return "unknown"
	}

	if name, ok := pitchCodeNames[strings.ToUpper(label)]; ok {
		return name
	}

	low := strings.ToLower(label)
	switch {
	case strings.Contains(low, "fast"), strings.Contains(low, "fb"):
		return "fastball"
	case strings.Contains(low, "slider"):
		return "slider"
	case strings.Contains(low, "curve"):
		return "curveball"
	case strings.Contains(low, "change"):
		return "changeup"
	case strings.Contains(low, "sinker"):
		return "sinker"
	case strings.Contains(low, "cutter"):
		return "cutter"
	case strings.Contains(low, "split"):
		return "splitter"
	}

	return label
}
