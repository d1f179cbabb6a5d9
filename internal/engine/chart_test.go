package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

func TestChartCalibration(t *testing.T) {
	chart, err := Chart(types.Date{Year: 1994, Month: 1, Day: 21})
	require.NoError(t, err)

	assert.Equal(t, "癸酉", chart.Year.String())
	assert.Equal(t, "乙丑", chart.Month.String())
	assert.Equal(t, "丁未", chart.Day.String())
	assert.Equal(t, types.Stem(3), chart.DayStem)
	assert.Equal(t, types.Branch(7), chart.DayBranch)
	assert.Equal(t, 2449374, chart.JDN)

	assert.Equal(t, types.FiveVirtues{
		Head:   types.Shaki,
		Left:   types.Hokaku,
		Center: types.Hokaku,
		Right:  types.Rokuzon,
		Feet:   types.Ryuko,
	}, chart.Stars)
	assert.Equal(t, chart.Stars.Left, chart.Stars.Center)
}

func TestChartKnownDates(t *testing.T) {
	tests := []struct {
		date                            types.Date
		head, left, center, right, feet types.StarType
	}{
		{types.Date{Year: 1900, Month: 1, Day: 1}, types.Shiroku, types.Gyokudo, types.Rokuzon, types.Ryuko, types.Hokaku},
		{types.Date{Year: 1924, Month: 2, Day: 5}, types.Kanshaku, types.Kanshaku, types.Kanshaku, types.Gyokudo, types.Hokaku},
		{types.Date{Year: 1970, Month: 1, Day: 1}, types.Ryuko, types.Hokaku, types.Kengyu, types.Kanshaku, types.Kengyu},
		{types.Date{Year: 1984, Month: 2, Day: 4}, types.Shaki, types.Shaki, types.Kanshaku, types.Shiroku, types.Ryuko},
		{types.Date{Year: 1990, Month: 6, Day: 15}, types.Sekimon, types.Shaki, types.Chojo, types.Shaki, types.Chojo},
		{types.Date{Year: 2000, Month: 1, Day: 1}, types.Sekimon, types.Shiroku, types.Gyokudo, types.Kengyu, types.Ryuko},
		{types.Date{Year: 2006, Month: 12, Day: 31}, types.Hokaku, types.Gyokudo, types.Chojo, types.Rokuzon, types.Shaki},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			chart, err := Chart(tt.date)
			require.NoError(t, err)
			want := types.FiveVirtues{Head: tt.head, Left: tt.left, Center: tt.center, Right: tt.right, Feet: tt.feet}
			assert.Equal(t, want, chart.Stars)
		})
	}
}

func TestChartNeverUndefined(t *testing.T) {
	// Four centuries cover every combination of year, month and day pillars
	// the boundary table can produce.
	d := types.Date{Year: 1800, Month: 1, Day: 1}
	for d.Year < 2200 {
		chart, err := Chart(d)
		require.NoError(t, err, d.String())
		require.Empty(t, chart.Stars.Undefined(), d.String())
		require.True(t, chart.Month.Valid(), d.String())

		d.Day += 7
		if d.Day > types.DaysIn(d.Year, d.Month) {
			d.Day -= types.DaysIn(d.Year, d.Month)
			d.Month++
			if d.Month > 12 {
				d.Month = 1
				d.Year++
			}
		}
	}
}
