package types

import (
	"errors"
	"fmt"
)

// NatalChart is the engine's result for one date. It is built once and never
// mutated.
type NatalChart struct {
	Date      Date        `json:"date" yaml:"date"`
	JDN       int         `json:"jdn" yaml:"jdn"`
	Year      Pillar      `json:"year_pillar" yaml:"year_pillar"`
	Month     Pillar      `json:"month_pillar" yaml:"month_pillar"`
	Day       Pillar      `json:"day_pillar" yaml:"day_pillar"`
	DayStem   Stem        `json:"day_stem" yaml:"day_stem"`
	DayBranch Branch      `json:"day_branch" yaml:"day_branch"`
	Stars     FiveVirtues `json:"stars" yaml:"stars"`
}

// InauspiciousGroup is one of the six biorhythm groups named by the two
// branches that close each decade of the sexagenary cycle. The zero value,
// GroupUnknown, is a sentinel that valid day pillars never produce.
type InauspiciousGroup int

const (
	GroupUnknown InauspiciousGroup = iota
	GroupXuHai                     // 戌亥, day pillars 甲子..癸酉
	GroupShenYou                   // 申酉, day pillars 甲戌..癸未
	GroupWuWei                     // 午未, day pillars 甲申..癸巳
	GroupChenSi                    // 辰巳, day pillars 甲午..癸卯
	GroupYinMao                    // 寅卯, day pillars 甲辰..癸丑
	GroupZiChou                    // 子丑, day pillars 甲寅..癸亥
)

var groupNames = []string{"unknown", "戌亥", "申酉", "午未", "辰巳", "寅卯", "子丑"}

// Known reports whether g is one of the six real groups.
func (g InauspiciousGroup) Known() bool { return g >= GroupXuHai && g <= GroupZiChou }

func (g InauspiciousGroup) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("InauspiciousGroup(%d)", int(g))
	}
	return groupNames[g]
}

func (g InauspiciousGroup) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= len(groupNames) {
		return nil, fmt.Errorf("marshal group %d: out of range", int(g))
	}
	return []byte(groupNames[g]), nil
}

func (g *InauspiciousGroup) UnmarshalText(b []byte) error {
	i, err := lookupName(groupNames, string(b))
	if err != nil {
		return fmt.Errorf("group: %w", err)
	}
	*g = InauspiciousGroup(i)
	return nil
}

// Subject is one engine input: a date and an optional display name.
type Subject struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Date Date   `json:"date" yaml:"date"`
}

// Reading is the single-chart output record.
type Reading struct {
	Name  string            `json:"name,omitempty" yaml:"name,omitempty"`
	Chart NatalChart        `json:"chart" yaml:"chart"`
	Group InauspiciousGroup `json:"group" yaml:"group"`
}

// Check reports table-consistency sentinels in r. A non-nil result wraps
// ErrUndefinedStar and/or ErrUnknownGroup.
func (r Reading) Check() error {
	var errs []error
	for _, p := range r.Chart.Stars.Undefined() {
		errs = append(errs, fmt.Errorf("%s position: %w", p, ErrUndefinedStar))
	}
	if !r.Group.Known() {
		errs = append(errs, fmt.Errorf("day pillar %s: %w", r.Chart.Day, ErrUnknownGroup))
	}
	return errors.Join(errs...)
}
