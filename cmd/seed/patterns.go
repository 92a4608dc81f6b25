package main

import (
	"math/rand/v2"

	"github.com/color3/backend/internal/application/usecase/submission"
	"github.com/color3/backend/internal/domain/entity"
)

// weight biases the random pick towards a family.
type weight struct {
	family entity.ColorFamily
	weight int
}

// Seasonal tendencies per month (0 = January).
var monthPatterns = [entity.MonthsPerYear][]weight{
	{{entity.ColorFamilyBlue, 4}, {entity.ColorFamilyWhite, 3}, {entity.ColorFamilyCyan, 2}, {entity.ColorFamilyGray, 1}},
	{{entity.ColorFamilyPink, 4}, {entity.ColorFamilyRed, 3}, {entity.ColorFamilyPurple, 2}},
	{{entity.ColorFamilyGreen, 4}, {entity.ColorFamilyYellow, 2}, {entity.ColorFamilyCyan, 2}},
	{{entity.ColorFamilyYellow, 3}, {entity.ColorFamilyGreen, 4}, {entity.ColorFamilyPink, 2}},
	{{entity.ColorFamilyGreen, 5}, {entity.ColorFamilyYellow, 3}},
	{{entity.ColorFamilyYellow, 4}, {entity.ColorFamilyOrange, 3}, {entity.ColorFamilyGreen, 2}},
	{{entity.ColorFamilyRed, 5}, {entity.ColorFamilyOrange, 3}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyOrange, 5}, {entity.ColorFamilyYellow, 3}, {entity.ColorFamilyRed, 2}},
	{{entity.ColorFamilyOrange, 5}, {entity.ColorFamilyRed, 3}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyOrange, 6}, {entity.ColorFamilyBlack, 3}, {entity.ColorFamilyPurple, 2}},
	{{entity.ColorFamilyOrange, 4}, {entity.ColorFamilyRed, 3}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyRed, 4}, {entity.ColorFamilyGreen, 4}, {entity.ColorFamilyWhite, 2}},
}

// Weekday tendencies, indexed like the submission arrays (0 = Sunday). Empty means uniform.
var dayOfWeekPatterns = [entity.DaysPerWeek][]weight{
	{{entity.ColorFamilyWhite, 2}, {entity.ColorFamilyBlue, 2}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyBlue, 5}, {entity.ColorFamilyGray, 3}, {entity.ColorFamilyBlack, 2}},
	nil,
	{{entity.ColorFamilyGreen, 3}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyOrange, 3}, {entity.ColorFamilyYellow, 2}},
	{{entity.ColorFamilyYellow, 5}, {entity.ColorFamilyOrange, 3}, {entity.ColorFamilyRed, 2}},
	nil,
}

const (
	nullMonthRate      = 0.20
	nullDayOfWeekRate  = 0.15
	nullDayOfMonthRate = 0.30
)

// generator builds random but seasonally plausible submissions.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// mapping returns one submission payload.
func (g *generator) mapping() submission.MappingInput {
	input := submission.MappingInput{
		Months:      make([]*submission.ColorInput, entity.MonthsPerYear),
		DaysOfMonth: make([]*submission.ColorInput, entity.DaysPerMonth),
		DaysOfWeek:  make([]*submission.ColorInput, entity.DaysPerWeek),
	}

	for i := range input.Months {
		if g.rng.Float64() >= nullMonthRate {
			input.Months[i] = g.color(monthPatterns[i])
		}
	}
	for i := range input.DaysOfWeek {
		if g.rng.Float64() >= nullDayOfWeekRate {
			input.DaysOfWeek[i] = g.color(dayOfWeekPatterns[i])
		}
	}
	for i := range input.DaysOfMonth {
		if g.rng.Float64() >= nullDayOfMonthRate {
			input.DaysOfMonth[i] = g.color(nil)
		}
	}

	return input
}

// color picks a family and submits its representative hex; the server classifies it.
func (g *generator) color(weights []weight) *submission.ColorInput {
	return &submission.ColorInput{Hex: g.pick(weights).Representative()}
}

func (g *generator) pick(weights []weight) entity.ColorFamily {
	families := entity.AllColorFamilies()
	if len(weights) == 0 {
		return families[g.rng.IntN(len(families))]
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}

	r := g.rng.IntN(total)
	for _, w := range weights {
		if r < w.weight {
			return w.family
		}
		r -= w.weight
	}
	return families[0]
}
