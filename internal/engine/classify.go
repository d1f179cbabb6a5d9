// Package engine derives natal charts, inauspicious-period groups and
// compatibility verdicts from calendar pillars. Everything here is a pure
// function of its input; Engine adds logging of table-consistency faults.
package engine

import (
	"fmt"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// hiddenStems maps each branch to its dominant hidden stem:
// 子癸 丑己 寅甲 卯乙 辰戊 巳丙 午丁 未己 申庚 酉辛 戌戊 亥壬.
var hiddenStems = [types.BranchCount]types.Stem{9, 5, 0, 1, 4, 2, 3, 5, 6, 7, 4, 8}

// HiddenStem returns the dominant stem of b. An out-of-range branch yields
// an invalid stem, which Classify reports as undefined.
func HiddenStem(b types.Branch) types.Stem {
	if !b.Valid() {
		return -1
	}
	return hiddenStems[b]
}

// Classify returns the star produced by candidate against the day stem ref.
// The rules are tried in order: same element, ref generates candidate, ref
// controls candidate, candidate generates ref, candidate controls ref. Within
// each rule equal polarity selects the first star of the pair.
//
// No rule can fail for two valid stems. If one does, Classify returns
// StarUndefined and an error wrapping types.ErrUndefinedStar.
func Classify(candidate, ref types.Stem) (types.StarType, error) {
	if !candidate.Valid() || !ref.Valid() {
		return types.StarUndefined, fmt.Errorf("classify %s against %s: %w", candidate, ref, types.ErrUndefinedStar)
	}
	ce, re := candidate.Element(), ref.Element()
	same := candidate.Polarity() == ref.Polarity()

	switch {
	case ce == re:
		return pick(same, types.Kanshaku, types.Sekimon), nil
	case re.Generates() == ce:
		return pick(same, types.Hokaku, types.Chojo), nil
	case re.Controls() == ce:
		return pick(same, types.Rokuzon, types.Shiroku), nil
	case ce.Generates() == re:
		return pick(same, types.Ryuko, types.Gyokudo), nil
	case ce.Controls() == re:
		return pick(same, types.Shaki, types.Kengyu), nil
	}
	return types.StarUndefined, fmt.Errorf("classify %s against %s: %w", candidate, ref, types.ErrUndefinedStar)
}

func pick(same bool, yes, no types.StarType) types.StarType {
	if same {
		return yes
	}
	return no
}
