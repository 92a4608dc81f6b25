// Package aggregate reduces many submissions into per-slot family
// statistics, consensus labels and a best-guess community mapping.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/color3/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// FamilyCount is one family's share of a single calendar slot.
type FamilyCount struct {
	Family     entity.ColorFamily
	Count      int
	Percentage int
}

// Result holds the ranked family counts for all 50 slots.
type Result struct {
	TotalSubmissions int
	Months           [entity.MonthsPerYear][]FamilyCount
	DaysOfMonth      [entity.DaysPerMonth][]FamilyCount // index 0 = day 1
	DaysOfWeek       [entity.DaysPerWeek][]FamilyCount  // index 0 = Sunday
}

type slotCounts [entity.ColorFamilyCount]int

// Aggregator accumulates submissions one at a time.
// The zero value is ready to use. It is not safe for concurrent use.
type Aggregator struct {
	total       int
	months      [entity.MonthsPerYear]slotCounts
	daysOfMonth [entity.DaysPerMonth]slotCounts
	daysOfWeek  [entity.DaysPerWeek]slotCounts
}

// Add counts every present entry of sub.
func (a *Aggregator) Add(sub *entity.Submission) {
	if sub == nil {
		return
	}
	a.total++
	countInto(a.months[:], sub.Months[:])
	countInto(a.daysOfMonth[:], sub.DaysOfMonth[:])
	countInto(a.daysOfWeek[:], sub.DaysOfWeek[:])
}

// Total returns the number of submissions added so far.
func (a *Aggregator) Total() int {
	return a.total
}

// Result builds the ranked statistics for everything added so far.
func (a *Aggregator) Result() *Result {
	r := &Result{TotalSubmissions: a.total}
	for i := range a.months {
		r.Months[i] = rank(a.months[i])
	}
	for i := range a.daysOfMonth {
		r.DaysOfMonth[i] = rank(a.daysOfMonth[i])
	}
	for i := range a.daysOfWeek {
		r.DaysOfWeek[i] = rank(a.daysOfWeek[i])
	}
	return r
}

// Aggregate reduces subs in a single pass.
func Aggregate(subs []*entity.Submission) *Result {
	var a Aggregator
	for _, sub := range subs {
		a.Add(sub)
	}
	return a.Result()
}

func countInto(counts []slotCounts, values []*entity.ColorValue) {
	for i, v := range values {
		if v == nil {
			continue
		}
		if idx := v.Family.Index(); idx >= 0 {
			counts[i][idx]++
		}
	}
}

// rank orders a slot's families by count descending, ties in family enum order.
func rank(counts slotCounts) []FamilyCount {
	total := 0
	for _, c := range counts {
		total += c
	}

	families := entity.AllColorFamilies()
	ranked := make([]FamilyCount, 0, len(families))
	for i, c := range counts {
		if c == 0 {
			continue
		}
		ranked = append(ranked, FamilyCount{
			Family:     families[i],
			Count:      c,
			Percentage: Percentage(c, total),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

// Percentage returns round(100*count/total), or 0 when total is 0.
// Halves round away from zero.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart())
}

// SlotTotal sums the counts of one slot.
func SlotTotal(counts []FamilyCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
