package engine

import (
	"fmt"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// sexagenary is the canonical 60-pillar cycle starting at 甲子.
var sexagenary = [types.CycleLength]string{
	"甲子", "乙丑", "丙寅", "丁卯", "戊辰", "己巳", "庚午", "辛未", "壬申", "癸酉",
	"甲戌", "乙亥", "丙子", "丁丑", "戊寅", "己卯", "庚辰", "辛巳", "壬午", "癸未",
	"甲申", "乙酉", "丙戌", "丁亥", "戊子", "己丑", "庚寅", "辛卯", "壬辰", "癸巳",
	"甲午", "乙未", "丙申", "丁酉", "戊戌", "己亥", "庚子", "辛丑", "壬寅", "癸卯",
	"甲辰", "乙巳", "丙午", "丁未", "戊申", "己酉", "庚戌", "辛亥", "壬子", "癸丑",
	"甲寅", "乙卯", "丙辰", "丁巳", "戊午", "己未", "庚申", "辛酉", "壬戌", "癸亥",
}

// decadeGroups is indexed by cycle position / 10.
var decadeGroups = [6]types.InauspiciousGroup{
	types.GroupXuHai,
	types.GroupShenYou,
	types.GroupWuWei,
	types.GroupChenSi,
	types.GroupYinMao,
	types.GroupZiChou,
}

var cycleIndex = func() map[string]int {
	m := make(map[string]int, len(sexagenary))
	for i, code := range sexagenary {
		m[code] = i
	}
	return m
}()

// CycleIndex returns the position of a pillar code in the 60-cycle.
func CycleIndex(code string) (int, bool) {
	i, ok := cycleIndex[code]
	return i, ok
}

// Group returns the inauspicious-period group of a day pillar. A pillar that
// is not in the cycle yields GroupUnknown and an error wrapping
// types.ErrUnknownGroup.
func Group(day types.Pillar) (types.InauspiciousGroup, error) {
	i, ok := CycleIndex(day.String())
	if !ok {
		return types.GroupUnknown, fmt.Errorf("day pillar %s: %w", day, types.ErrUnknownGroup)
	}
	return decadeGroups[i/10], nil
}
