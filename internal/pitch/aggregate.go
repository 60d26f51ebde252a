package pitch

import "sort"

// pitcherAcc accumulates one pitcher's counts during the grouping pass.
// Counts are kept per exact pitch type; categories are derived when the
// accumulator is converted to its sorted summary form.
type pitcherAcc struct {
	team   string
	counts map[string]int
}

// Aggregate groups events by pitcher, then category, then exact pitch
// type, and returns the summary with every level sorted by descending
// count. Ties at any level break by ascending name, so the report is
// canonical for any permutation of the input.
//
// Fails with *UnknownPitchTypeError on the first pitch type missing from
// the category table; no partial report is ever returned.
func Aggregate(events []Event) (Report, error) {
	byPitcher := make(map[string]*pitcherAcc)

	for _, ev := range events {
		if _, ok := categoryByType[ev.PitchType]; !ok {
			return Report{}, &UnknownPitchTypeError{PitchType: ev.PitchType}
		}
		acc, ok := byPitcher[ev.PitcherName]
		if !ok {
			acc = &pitcherAcc{counts: make(map[string]int)}
			byPitcher[ev.PitcherName] = acc
		}
		if acc.team == "" {
			acc.team = ev.Team
		}
		acc.counts[ev.PitchType]++
	}

	pitchers := make([]PitcherSummary, 0, len(byPitcher))
	for name, acc := range byPitcher {
		pitchers = append(pitchers, acc.summary(name))
	}
	sort.Slice(pitchers, func(i, j int) bool {
		return rankBefore(pitchers[i].Total, pitchers[j].Total, pitchers[i].Name, pitchers[j].Name)
	})

	return Report{Pitchers: pitchers}, nil
}

// summary converts the accumulated type counts into the sorted
// category/type form and rolls totals up.
func (a *pitcherAcc) summary(name string) PitcherSummary {
	typesByCategory := make(map[string][]TypeSummary)
	for pitchType, count := range a.counts {
		cat := categoryByType[pitchType]
		typesByCategory[cat] = append(typesByCategory[cat], TypeSummary{Name: pitchType, Count: count})
	}

	categories := make([]CategorySummary, 0, len(typesByCategory))
	total := 0
	for cat, types := range typesByCategory {
		sort.Slice(types, func(i, j int) bool {
			return rankBefore(types[i].Count, types[j].Count, types[i].Name, types[j].Name)
		})
		catTotal := 0
		for _, t := range types {
			catTotal += t.Count
		}
		total += catTotal
		categories = append(categories, CategorySummary{Name: cat, Total: catTotal, Types: types})
	}
	sort.Slice(categories, func(i, j int) bool {
		return rankBefore(categories[i].Total, categories[j].Total, categories[i].Name, categories[j].Name)
	})

	return PitcherSummary{Name: name, Team: a.team, Total: total, Categories: categories}
}

// rankBefore orders by descending count, equal counts by ascending
// name. Used at all three report levels.
func rankBefore(countI, countJ int, nameI, nameJ string) bool {
	if countI != countJ {
		return countI > countJ
	}
	return nameI < nameJ
}
