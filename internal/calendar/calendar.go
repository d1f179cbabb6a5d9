// Package calendar maps Gregorian dates onto the sexagenary calendar: Julian
// Day Numbers, the Chinese year, and the year, month and day pillars.
//
// Solar-term month boundaries are approximated with a fixed civil-date table.
// The approximation is deliberate and must not be replaced by ephemeris
// lookups without treating it as a behavior change.
package calendar

import "github.com/mesh-intelligence/sanmei/pkg/types"

// RefJDN is the Julian Day Number of 1900-01-01, a 甲戌 day.
const RefJDN = 2415021

// refBranchOffset is the branch index of the RefJDN day (戌).
const refBranchOffset = 10

// springDay is the fixed Start-of-Spring boundary: February 4.
var springDay = types.Date{Month: 2, Day: 4}

// solarTerm is a civil-date month boundary and the branch that starts on it.
type solarTerm struct {
	month, day int
	branch     types.Branch
}

// solarTerms is ordered by date. Dates before the first entry fall in
// branch 0 (子), the tail of the previous cycle.
var solarTerms = []solarTerm{
	{1, 6, 1}, {2, 4, 2}, {3, 6, 3}, {4, 5, 4},
	{5, 6, 5}, {6, 6, 6}, {7, 7, 7}, {8, 7, 8},
	{9, 8, 9}, {10, 8, 10}, {11, 7, 11}, {12, 7, 0},
}

// monthStemStart is the stem of the 寅 month, indexed by year stem mod 5:
// 甲己→丙, 乙庚→戊, 丙辛→庚, 丁壬→壬, 戊癸→甲.
var monthStemStart = [5]types.Stem{2, 4, 6, 8, 0}

// Pillars is the normalized form of one date.
type Pillars struct {
	JDN   int
	Year  types.Pillar
	Month types.Pillar
	Day   types.Pillar
}

// Normalize computes all three pillars of d. d must already be valid.
func Normalize(d types.Date) Pillars {
	jdn := JDN(d)
	year := YearPillar(d)
	mb := MonthBranch(d)
	return Pillars{
		JDN:   jdn,
		Year:  year,
		Month: types.Pillar{Stem: MonthStem(year.Stem, mb), Branch: mb},
		Day:   DayPillar(jdn),
	}
}

// JDN returns the Julian Day Number of d using the civil-to-JDN formula.
// Floor division keeps it exact for years before 4800 BCE as well.
func JDN(d types.Date) int {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + (153*m+2)/5 + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// FromJDN is the inverse of JDN.
func FromJDN(jdn int) types.Date {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return types.Date{
		Year:  100*b + d - 4800 + m/10,
		Month: m + 3 - 12*(m/10),
		Day:   e - (153*m+2)/5 + 1,
	}
}

// ChineseYear returns d's year, or the previous year if d precedes February 4.
func ChineseYear(d types.Date) int {
	if d.Before(types.Date{Year: d.Year, Month: springDay.Month, Day: springDay.Day}) {
		return d.Year - 1
	}
	return d.Year
}

// YearPillar anchors the 60-cycle at year 4 CE (甲子).
func YearPillar(d types.Date) types.Pillar {
	cy := ChineseYear(d)
	return types.Pillar{
		Stem:   types.Stem(mod(cy-4, types.StemCount)),
		Branch: types.Branch(mod(cy-4, types.BranchCount)),
	}
}

// MonthBranch returns the branch of the latest solar-term boundary at or
// before d within d's civil year, or 子 before the first boundary.
func MonthBranch(d types.Date) types.Branch {
	var br types.Branch
	for _, t := range solarTerms {
		if !d.Before(types.Date{Year: d.Year, Month: t.month, Day: t.day}) {
			br = t.branch
		}
	}
	return br
}

// MonthStem counts forward from the 寅-month start stem of the year.
func MonthStem(yearStem types.Stem, monthBranch types.Branch) types.Stem {
	start := monthStemStart[int(yearStem)%5]
	offset := mod(int(monthBranch)-2, types.BranchCount)
	return types.Stem((int(start) + offset) % types.StemCount)
}

// DayPillar resolves the day stem and branch from a Julian Day Number.
func DayPillar(jdn int) types.Pillar {
	n := jdn - RefJDN
	return types.Pillar{
		Stem:   types.Stem(mod(n, types.StemCount)),
		Branch: types.Branch(mod(n+refBranchOffset, types.BranchCount)),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
