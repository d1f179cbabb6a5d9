package types

import "fmt"

// Cycle lengths.
const (
	StemCount   = 10
	BranchCount = 12
	CycleLength = 60
)

// Element is one of the five phases. Generation runs Wood→Fire→Earth→Metal→Water→Wood;
// control runs Wood→Earth→Water→Fire→Metal→Wood.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = []string{"wood", "fire", "earth", "metal", "water"}

// Generates returns the element e produces in the generation cycle.
func (e Element) Generates() Element { return (e + 1) % 5 }

// Controls returns the element e subdues in the control cycle.
func (e Element) Controls() Element { return (e + 2) % 5 }

// Valid reports whether e is one of the five phases.
func (e Element) Valid() bool { return e >= Wood && e <= Water }

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Polarity is the parity of a stem or branch.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yin {
		return "yin"
	}
	return "yang"
}

// Stem is a heavenly stem, 0 (甲) through 9 (癸).
type Stem int

var stemNames = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Valid reports whether s is in [0,10).
func (s Stem) Valid() bool { return s >= 0 && s < StemCount }

// Element returns the stem's phase: index / 2.
func (s Stem) Element() Element { return Element(s / 2) }

// Polarity returns the stem's parity: index % 2.
func (s Stem) Polarity() Polarity { return Polarity(s % 2) }

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemNames[s]
}

func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal stem %d: out of range", int(s))
	}
	return []byte(stemNames[s]), nil
}

func (s *Stem) UnmarshalText(b []byte) error {
	i, err := lookupName(stemNames, string(b))
	if err != nil {
		return fmt.Errorf("stem: %w", err)
	}
	*s = Stem(i)
	return nil
}

// Branch is an earthly branch, 0 (子) through 11 (亥).
type Branch int

var branchNames = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Valid reports whether b is in [0,12).
func (b Branch) Valid() bool { return b >= 0 && b < BranchCount }

// Polarity returns the branch's parity: index % 2.
func (b Branch) Polarity() Polarity { return Polarity(b % 2) }

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchNames[b]
}

func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshal branch %d: out of range", int(b))
	}
	return []byte(branchNames[b]), nil
}

func (b *Branch) UnmarshalText(text []byte) error {
	i, err := lookupName(branchNames, string(text))
	if err != nil {
		return fmt.Errorf("branch: %w", err)
	}
	*b = Branch(i)
	return nil
}

// Pillar pairs a stem with a branch and identifies a year, month, or day.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// Valid reports whether both indices are in range and share parity. Only 60
// of the 120 stem/branch combinations are pillars.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && p.Stem.Polarity() == p.Branch.Polarity()
}

// String renders the two-character code, e.g. "丁未".
func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

func (p Pillar) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal pillar %s: %w", p, ErrInvalidPillar)
	}
	return []byte(p.String()), nil
}

func (p *Pillar) UnmarshalText(b []byte) error {
	parsed, err := ParsePillar(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePillar parses a two-character pillar code. It returns ErrInvalidPillar
// for unknown characters or a parity mismatch.
func ParsePillar(code string) (Pillar, error) {
	r := []rune(code)
	if len(r) != 2 {
		return Pillar{}, fmt.Errorf("%q: %w", code, ErrInvalidPillar)
	}
	s, err := lookupName(stemNames, string(r[0]))
	if err != nil {
		return Pillar{}, fmt.Errorf("%q: %w", code, ErrInvalidPillar)
	}
	b, err := lookupName(branchNames, string(r[1]))
	if err != nil {
		return Pillar{}, fmt.Errorf("%q: %w", code, ErrInvalidPillar)
	}
	p := Pillar{Stem: Stem(s), Branch: Branch(b)}
	if !p.Valid() {
		return Pillar{}, fmt.Errorf("%q: %w", code, ErrInvalidPillar)
	}
	return p, nil
}

// lookupName returns the index of name in names.
func lookupName(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownName)
}
