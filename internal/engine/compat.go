package engine

import (
	"fmt"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Display names used when a subject has none.
const (
	defaultNameA = "Person A"
	defaultNameB = "Person B"
)

// Assess compares two readings. Names are used only to format messages.
func Assess(a, b types.Reading) types.CompatibilityAssessment {
	na, nb := displayName(a.Name, defaultNameA), displayName(b.Name, defaultNameB)
	return types.CompatibilityAssessment{
		Identity:  IdentityVerdict(a.Chart.Stars.Center, b.Chart.Stars.Center, na, nb),
		Field:     FieldVerdict(a.Chart.Stars.Right, b.Chart.Stars.Right),
		Crisis:    CrisisVerdict(a.Chart.Stars.Feet, b.Chart.Stars.Feet),
		Biorhythm: BiorhythmVerdict(a.Group, b.Group),
	}
}

// IdentityRelation classifies two center stars by their elements. Equal
// elements mirror; otherwise generation is checked in both directions before
// control. An undefined star yields IdentityIndependent.
func IdentityRelation(a, b types.StarType) types.IdentityRelation {
	ea, okA := a.Element()
	eb, okB := b.Element()
	switch {
	case !okA || !okB:
		return types.IdentityIndependent
	case ea == eb:
		return types.IdentityMirrored
	case ea.Generates() == eb:
		return types.IdentityFlowAToB
	case eb.Generates() == ea:
		return types.IdentityFlowBToA
	case ea.Controls() == eb:
		return types.IdentityADominatesB
	case eb.Controls() == ea:
		return types.IdentityBDominatesA
	}
	return types.IdentityIndependent
}

// IdentityVerdict is the power-balance section of a compatibility report.
func IdentityVerdict(a, b types.StarType, na, nb string) types.Verdict[types.IdentityRelation] {
	v := types.Verdict[types.IdentityRelation]{
		Kind:  IdentityRelation(a, b),
		Title: "Power balance and who leads",
	}
	switch v.Kind {
	case types.IdentityMirrored:
		v.Message = "Your ways of working are the same in kind. You understand each other without words, " +
			"but when opinions collide you tend to run in parallel; a third party's view keeps things moving."
	case types.IdentityFlowAToB:
		v.Message = fmt.Sprintf("Work energy flows from %s to %s. %s supports and moves %s, "+
			"and that is where this pair creates the most value.", na, nb, na, nb)
	case types.IdentityFlowBToA:
		v.Message = fmt.Sprintf("Work energy flows from %s to %s. %s takes in %s's proposals "+
			"and makes the final call.", nb, na, na, nb)
	case types.IdentityADominatesB:
		v.Message = fmt.Sprintf("%s readily steers %s. As a manager or client, %s's instructions "+
			"land smoothly.", na, nb, na)
	case types.IdentityBDominatesA:
		v.Message = fmt.Sprintf("%s holds the steering power over %s. Giving %s due credit and "+
			"letting them lead is the smart play.", nb, na, nb)
	default:
		v.Message = "You can work as independent professionals with a healthy tension between you."
	}
	return v
}

// FieldVerdict compares the right-position stars.
func FieldVerdict(a, b types.StarType) types.Verdict[types.FieldRelation] {
	v := types.Verdict[types.FieldRelation]{Title: "Approach to customers and the market"}
	prefix := fmt.Sprintf("Right-hand stars %s × %s. ", a, b)
	if a == b {
		v.Kind = types.FieldAligned
		v.Message = prefix + "Your style toward customers and the market matches completely; " +
			"expect outstanding teamwork in sales and presentations."
		return v
	}
	v.Kind = types.FieldComplementary
	v.Message = prefix + "Your approaches to the market differ. A clear division of roles, " +
		"such as new business against account care, makes you both spear and shield."
	return v
}

// CrisisVerdict compares the feet-position stars.
func CrisisVerdict(a, b types.StarType) types.Verdict[types.CrisisRelation] {
	v := types.Verdict[types.CrisisRelation]{Title: "Crisis management under pressure"}
	prefix := fmt.Sprintf("Feet stars %s × %s. ", a, b)
	if a == b {
		v.Kind = types.CrisisSynchronized
		v.Message = prefix + "You think about trouble the same way. Even in a crisis you stay in step " +
			"and can decide quickly."
		return v
	}
	v.Kind = types.CrisisComplementary
	v.Message = prefix + "You handle crises differently. When one of you is rattled the other can " +
		"analyse calmly, so you cover for each other when it matters most."
	return v
}

// BiorhythmVerdict compares two inauspicious groups. An unknown group gives
// the neutral text rather than a diagnosis.
func BiorhythmVerdict(a, b types.InauspiciousGroup) types.Verdict[types.BiorhythmRelation] {
	v := types.Verdict[types.BiorhythmRelation]{Title: "Business biorhythm and risk hedging"}
	switch {
	case !a.Known() || !b.Known():
		v.Kind = types.BiorhythmNeutral
		v.Message = "Each of you can move the business forward steadily at your own pace."
	case a == b:
		v.Kind = types.BiorhythmSynchronized
		v.Message = fmt.Sprintf("You share the %s inauspicious-period biorhythm. Your good windows coincide "+
			"and produce explosive speed, but the downturns arrive together too; keep slack in funds "+
			"and plans as a hedge.", a)
	default:
		v.Kind = types.BiorhythmOffsetting
		v.Message = fmt.Sprintf("Your biorhythms differ, %s and %s. When one of you is in a low period "+
			"the other is strong, so results hold up: a first-class risk hedge.", a, b)
	}
	return v
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
