package engine

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/sanmei/internal/calendar"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Chart builds the natal chart for d. d must already be valid.
//
// Each position classifies one stem against the day stem:
//
//	head   year stem
//	left   hidden stem of the month branch
//	center hidden stem of the day branch (identity star)
//	right  hidden stem of the year branch
//	feet   month stem
//
// A classification fault leaves StarUndefined in its slot and is returned
// joined with any others; the chart is still complete otherwise.
func Chart(d types.Date) (types.NatalChart, error) {
	p := calendar.Normalize(d)
	ds := p.Day.Stem

	var errs []error
	classify := func(pos types.Position, candidate types.Stem) types.StarType {
		st, err := Classify(candidate, ds)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s position: %w", pos, err))
		}
		return st
	}

	stars := types.FiveVirtues{
		Head:   classify(types.Head, p.Year.Stem),
		Left:   classify(types.Left, HiddenStem(p.Month.Branch)),
		Center: classify(types.Center, HiddenStem(p.Day.Branch)),
		Right:  classify(types.Right, HiddenStem(p.Year.Branch)),
		Feet:   classify(types.Feet, p.Month.Stem),
	}

	return types.NatalChart{
		Date:      d,
		JDN:       p.JDN,
		Year:      p.Year,
		Month:     p.Month,
		Day:       p.Day,
		DayStem:   ds,
		DayBranch: p.Day.Branch,
		Stars:     stars,
	}, errors.Join(errs...)
}
