package types

import "fmt"

// StarType is one of the ten star archetypes obtained by classifying a stem
// against the day stem. The zero value, StarUndefined, is a reserved sentinel
// that valid input never produces.
type StarType int

const (
	StarUndefined StarType = iota
	Kanshaku               // same element, same polarity
	Sekimon                // same element, different polarity
	Hokaku                 // day stem generates candidate, same polarity
	Chojo                  // day stem generates candidate, different polarity
	Rokuzon                // day stem controls candidate, same polarity
	Shiroku                // day stem controls candidate, different polarity
	Ryuko                  // candidate generates day stem, same polarity
	Gyokudo                // candidate generates day stem, different polarity
	Shaki                  // candidate controls day stem, same polarity
	Kengyu                 // candidate controls day stem, different polarity
)

// StarTypes lists the ten archetypes in classification order.
var StarTypes = []StarType{Kanshaku, Sekimon, Hokaku, Chojo, Rokuzon, Shiroku, Ryuko, Gyokudo, Shaki, Kengyu}

var starNames = []string{
	"未定義",
	"貫索星", "石門星", "鳳閣星", "調舒星", "禄存星",
	"司禄星", "龍高星", "玉堂星", "車騎星", "牽牛星",
}

// starElements is the phase each archetype stands for when two charts are
// compared: Kanshaku/Sekimon wood, Hokaku/Chojo fire, Rokuzon/Shiroku earth,
// Ryuko/Gyokudo water, Shaki/Kengyu metal.
var starElements = []Element{-1, Wood, Wood, Fire, Fire, Earth, Earth, Water, Water, Metal, Metal}

// Defined reports whether t is one of the ten archetypes.
func (t StarType) Defined() bool { return t >= Kanshaku && t <= Kengyu }

// Element returns the archetype's phase. ok is false for StarUndefined.
func (t StarType) Element() (e Element, ok bool) {
	if !t.Defined() {
		return 0, false
	}
	return starElements[t], true
}

// Profile returns the archetype's descriptive texts. The zero StarProfile is
// returned for StarUndefined.
func (t StarType) Profile() StarProfile {
	if !t.Defined() {
		return StarProfile{}
	}
	return starProfiles[t]
}

func (t StarType) String() string {
	if t < 0 || int(t) >= len(starNames) {
		return fmt.Sprintf("StarType(%d)", int(t))
	}
	return starNames[t]
}

func (t StarType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(starNames) {
		return nil, fmt.Errorf("marshal star %d: out of range", int(t))
	}
	return []byte(starNames[t]), nil
}

func (t *StarType) UnmarshalText(b []byte) error {
	i, err := lookupName(starNames, string(b))
	if err != nil {
		return fmt.Errorf("star: %w", err)
	}
	*t = StarType(i)
	return nil
}

// Position is one of the five structural slots of a chart.
type Position int

const (
	Head Position = iota
	Left
	Center
	Right
	Feet
)

// Positions lists the slots in chart order.
var Positions = []Position{Head, Left, Center, Right, Feet}

var positionNames = []string{"head", "left", "center", "right", "feet"}

func (p Position) String() string {
	if p < Head || p > Feet {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// FiveVirtues holds one star per position. Center is the identity star.
type FiveVirtues struct {
	Head   StarType `json:"head" yaml:"head"`
	Left   StarType `json:"left" yaml:"left"`
	Center StarType `json:"center" yaml:"center"`
	Right  StarType `json:"right" yaml:"right"`
	Feet   StarType `json:"feet" yaml:"feet"`
}

// At returns the star in position p.
func (f FiveVirtues) At(p Position) StarType {
	switch p {
	case Head:
		return f.Head
	case Left:
		return f.Left
	case Center:
		return f.Center
	case Right:
		return f.Right
	case Feet:
		return f.Feet
	}
	return StarUndefined
}

// Undefined returns the positions holding StarUndefined.
func (f FiveVirtues) Undefined() []Position {
	var out []Position
	for _, p := range Positions {
		if !f.At(p).Defined() {
			out = append(out, p)
		}
	}
	return out
}
