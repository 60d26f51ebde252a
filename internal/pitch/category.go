package pitch

import "fmt"

// Category labels. Every known pitch type belongs to exactly one.
const (
	CategoryHeater       = "heater"
	CategoryBreakingBall = "breaking ball"
	CategoryOffspeed     = "offspeed"
)

// categoryByType is the fixed pitch-type-to-category table. It is built
// once and never mutated, so concurrent reads need no locking.
var categoryByType = map[string]string{
	"fastball": CategoryHeater,
	"cutter":   CategoryHeater,
	"sinker":   CategoryHeater,

	"slider":    CategoryBreakingBall,
	"curveball": CategoryBreakingBall,

	"splitter": CategoryOffspeed,
	"changeup": CategoryOffspeed,
}

// CategoryOf returns the category for a pitch type, and whether the type
// is known at all.
func CategoryOf(pitchType string) (string, bool) {
	cat, ok := categoryByType[pitchType]
	return cat, ok
}

// UnknownPitchTypeError reports a pitch type with no category mapping.
// It is the aggregator's only error condition and is always fatal to the
// whole aggregation.
type UnknownPitchTypeError struct {
	PitchType string
}

func (e *UnknownPitchTypeError) Error() string {
	return fmt.Sprintf("unknown pitch type %q", e.PitchType)
}
