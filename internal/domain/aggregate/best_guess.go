package aggregate

import "github.com/color3/backend/internal/domain/entity"

// BestGuessMapping picks the top-ranked family of every slot.
// Slots without observations stay unmapped.
func BestGuessMapping(r *Result) entity.UnitMapping {
	var m entity.UnitMapping
	if r == nil {
		return m
	}
	for i, counts := range r.Months {
		if f, ok := top(counts); ok {
			m.Months[i] = &f
		}
	}
	for i, counts := range r.DaysOfMonth {
		if f, ok := top(counts); ok {
			m.DaysOfMonth[i] = &f
		}
	}
	for i, counts := range r.DaysOfWeek {
		if f, ok := top(counts); ok {
			m.DaysOfWeek[i] = &f
		}
	}
	return m
}

func top(counts []FamilyCount) (entity.ColorFamily, bool) {
	if len(counts) == 0 || counts[0].Count == 0 {
		return "", false
	}
	return counts[0].Family, true
}
