package sanmei_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sanmei/pkg/sanmei"
	"github.com/mesh-intelligence/sanmei/pkg/sqlite"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

var calibration = types.Subject{Name: "Calibration", Date: types.Date{Year: 1994, Month: 1, Day: 21}}

func TestNewEngine(t *testing.T) {
	r, err := sanmei.NewEngine().Read(calibration)
	require.NoError(t, err)
	assert.Equal(t, "癸酉", r.Chart.Year.String())
	assert.Equal(t, "乙丑", r.Chart.Month.String())
	assert.Equal(t, "丁未", r.Chart.Day.String())
	assert.Equal(t, types.GroupYinMao, r.Group)
}

func TestNewEngineWithSQLiteCache(t *testing.T) {
	store := sqlite.NewStore(nil)
	require.NoError(t, store.Attach(types.Config{
		Backend:  types.BackendSQLite,
		DataDir:  t.TempDir(),
		CacheTTL: types.DefaultCacheTTL,
	}))
	defer store.Detach()

	eng := sanmei.NewEngine(sanmei.WithCache(store, 0))
	want, err := eng.Read(calibration)
	require.NoError(t, err)

	cached, err := store.GetReading(calibration)
	require.NoError(t, err)
	assert.Equal(t, want, cached)

	again, err := eng.Read(calibration)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}
