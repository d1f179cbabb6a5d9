package types

import "fmt"

// IdentityRelation compares the elements of two center stars.
type IdentityRelation int

const (
	IdentityIndependent IdentityRelation = iota
	IdentityMirrored
	IdentityFlowAToB
	IdentityFlowBToA
	IdentityADominatesB
	IdentityBDominatesA
)

var identityNames = []string{"independent", "mirrored", "flow_a_to_b", "flow_b_to_a", "a_dominates_b", "b_dominates_a"}

// Swap returns the relation seen from the other side of the pair.
func (r IdentityRelation) Swap() IdentityRelation {
	switch r {
	case IdentityFlowAToB:
		return IdentityFlowBToA
	case IdentityFlowBToA:
		return IdentityFlowAToB
	case IdentityADominatesB:
		return IdentityBDominatesA
	case IdentityBDominatesA:
		return IdentityADominatesB
	}
	return r
}

func (r IdentityRelation) String() string { return enumName(identityNames, int(r), "IdentityRelation") }
func (r IdentityRelation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r *IdentityRelation) UnmarshalText(b []byte) error {
	return unmarshalEnum(identityNames, b, (*int)(r))
}

// FieldRelation compares the right-position stars: how two people approach
// customers and the outside world.
type FieldRelation int

const (
	FieldAligned FieldRelation = iota
	FieldComplementary
)

var fieldNames = []string{"aligned", "complementary"}

func (r FieldRelation) String() string { return enumName(fieldNames, int(r), "FieldRelation") }
func (r FieldRelation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r *FieldRelation) UnmarshalText(b []byte) error {
	return unmarshalEnum(fieldNames, b, (*int)(r))
}

// CrisisRelation compares the feet-position stars: how two people respond
// under stress.
type CrisisRelation int

const (
	CrisisSynchronized CrisisRelation = iota
	CrisisComplementary
)

var crisisNames = []string{"synchronized", "complementary"}

func (r CrisisRelation) String() string { return enumName(crisisNames, int(r), "CrisisRelation") }
func (r CrisisRelation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r *CrisisRelation) UnmarshalText(b []byte) error {
	return unmarshalEnum(crisisNames, b, (*int)(r))
}

// BiorhythmRelation compares two inauspicious groups.
type BiorhythmRelation int

const (
	BiorhythmNeutral BiorhythmRelation = iota
	BiorhythmSynchronized
	BiorhythmOffsetting
)

var biorhythmNames = []string{"neutral", "synchronized", "offsetting"}

func (r BiorhythmRelation) String() string {
	return enumName(biorhythmNames, int(r), "BiorhythmRelation")
}
func (r BiorhythmRelation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r *BiorhythmRelation) UnmarshalText(b []byte) error {
	return unmarshalEnum(biorhythmNames, b, (*int)(r))
}

// Verdict is one qualitative compatibility finding and its narrative text.
type Verdict[K any] struct {
	Kind    K      `json:"kind" yaml:"kind"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// CompatibilityAssessment holds four independent verdicts. There is no
// aggregate score; each verdict is rendered as its own section.
type CompatibilityAssessment struct {
	Identity  Verdict[IdentityRelation]  `json:"identity" yaml:"identity"`
	Field     Verdict[FieldRelation]     `json:"field" yaml:"field"`
	Crisis    Verdict[CrisisRelation]    `json:"crisis" yaml:"crisis"`
	Biorhythm Verdict[BiorhythmRelation] `json:"biorhythm" yaml:"biorhythm"`
}

// Pairing is the pair output record.
type Pairing struct {
	A          Reading                 `json:"a" yaml:"a"`
	B          Reading                 `json:"b" yaml:"b"`
	Assessment CompatibilityAssessment `json:"assessment" yaml:"assessment"`
}

// Check reports table-consistency sentinels in either reading.
func (p Pairing) Check() error {
	if err := p.A.Check(); err != nil {
		return fmt.Errorf("reading A: %w", err)
	}
	if err := p.B.Check(); err != nil {
		return fmt.Errorf("reading B: %w", err)
	}
	return nil
}

func enumName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func unmarshalEnum(names []string, b []byte, dst *int) error {
	i, err := lookupName(names, string(b))
	if err != nil {
		return err
	}
	*dst = i
	return nil
}
