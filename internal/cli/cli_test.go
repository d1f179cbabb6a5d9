package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sanmei/internal/paths"
	"github.com/mesh-intelligence/sanmei/internal/sqlite"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// env is an isolated pair of config and data directories.
type env struct {
	configDir string
	dataDir   string
}

func newEnv(t *testing.T) env {
	t.Helper()
	for _, k := range []string{"SANMEI_BACKEND", "SANMEI_FORMAT", "SANMEI_CACHE_TTL", "SANMEI_LOG_LEVEL",
		"SANMEI_MIN_DATE", "SANMEI_MAX_DATE", paths.EnvConfigDir, paths.EnvDataDir} {
		t.Setenv(k, "")
	}
	return env{configDir: t.TempDir(), dataDir: t.TempDir()}
}

func (e env) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := newEnv(t).run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sanmei v")
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	e := newEnv(t)
	out, _, err := e.run(t, "init", "--min-date", "1924-02-05", "--max-date", "2006-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote ")

	data, err := os.ReadFile(filepath.Join(e.configDir, paths.ConfigFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: sqlite")
	assert.Contains(t, string(data), "min: \"1924-02-05\"")
	assert.FileExists(t, filepath.Join(e.dataDir, sqlite.DBFile))

	out, _, err = e.run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "kept existing")
}

func TestInitRejectsBadRange(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "init", "--min-date", "2006-12-31", "--max-date", "1924-02-05")
	assert.ErrorIs(t, err, types.ErrRangeInvalid)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestChartText(t *testing.T) {
	out, _, err := newEnv(t).run(t, "chart", "1994-01-21", "--name", "Aiko")
	require.NoError(t, err)
	for _, want := range []string{"Aiko  1994-01-21", "year 癸酉", "month 乙丑", "day 丁未", "寅卯", "車騎星", "禄存星", "龍高星"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "five talents")
}

func TestChartJSON(t *testing.T) {
	out, _, err := newEnv(t).run(t, "chart", "1994-01-21", "-o", "json")
	require.NoError(t, err)

	var r types.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "丁未", r.Chart.Day.String())
	assert.Equal(t, types.Hokaku, r.Chart.Stars.Center)
	assert.Equal(t, types.GroupYinMao, r.Group)
}

func TestChartYAML(t *testing.T) {
	out, _, err := newEnv(t).run(t, "chart", "1994-01-21", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "day_pillar: 丁未")
	assert.Contains(t, out, "group: 寅卯")
}

func TestChartErrors(t *testing.T) {
	e := newEnv(t)

	_, _, err := e.run(t, "chart", "1994-02-30")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
	assert.Equal(t, exitUserError, exitCode(err))

	_, _, err = e.run(t, "chart", "1994-01-21", "-o", "xml")
	assert.ErrorIs(t, err, types.ErrFormatUnknown)

	_, _, err = e.run(t, "chart")
	assert.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestChartDateRange(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "init", "--min-date", "1924-02-05", "--max-date", "2006-12-31")
	require.NoError(t, err)

	_, _, err = e.run(t, "chart", "2010-01-01")
	assert.ErrorIs(t, err, types.ErrDateOutOfRange)
	_, _, err = e.run(t, "chart", "1924-02-04")
	assert.ErrorIs(t, err, types.ErrDateOutOfRange)
	_, _, err = e.run(t, "chart", "1924-02-05")
	assert.NoError(t, err)
}

func TestChartUsesCache(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "chart", "1994-01-21")
	require.NoError(t, err)
	_, _, err = e.run(t, "chart", "1994-01-21")
	require.NoError(t, err)

	out, _, err := e.run(t, "cache", "stats", "-o", "json")
	require.NoError(t, err)
	var st sqlite.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, 1, st.Readings)
}

func TestNoCache(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "--no-cache", "chart", "1994-01-21")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(e.dataDir, sqlite.DBFile))

	_, _, err = e.run(t, "--no-cache", "cache", "stats")
	assert.ErrorIs(t, err, errCacheDisabled)
}

func TestCompat(t *testing.T) {
	e := newEnv(t)
	out, _, err := e.run(t, "compat", "1994-01-21", "2000-01-01", "--name-a", "Aiko", "--name-b", "Ben", "-o", "json")
	require.NoError(t, err)

	var p types.Pairing
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, types.IdentityBDominatesA, p.Assessment.Identity.Kind)
	assert.Equal(t, types.FieldComplementary, p.Assessment.Field.Kind)
	assert.Equal(t, types.CrisisSynchronized, p.Assessment.Crisis.Kind)
	assert.Equal(t, types.BiorhythmOffsetting, p.Assessment.Biorhythm.Kind)

	out, _, err = e.run(t, "compat", "1994-01-21", "2000-01-01", "--name-a", "Aiko", "--name-b", "Ben")
	require.NoError(t, err)
	assert.Contains(t, out, "Ben's manual")
	assert.Contains(t, out, "Power balance and who leads")
	assert.Contains(t, out, "Business biorhythm and risk hedging")
}

func TestRoster(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "team.toml")
	require.NoError(t, os.WriteFile(path, []byte(`team = "Platform"

[[member]]
name = "Aiko"
birth = 1994-01-21

[[member]]
name = "Ben"
birth = 2000-01-01
`), 0o644))

	out, _, err := e.run(t, "roster", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Team Platform")
	assert.Contains(t, out, "Aiko × Ben")
	assert.Contains(t, out, "b_dominates_a")

	_, _, err = e.run(t, "roster", filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestCacheMaintenance(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.run(t, "compat", "1994-01-21", "2000-01-01")
	require.NoError(t, err)

	export := filepath.Join(t.TempDir(), "cache.jsonl")
	out, _, err := e.run(t, "cache", "export", export)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 1 entries")

	out, _, err = e.run(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared 1 entries")

	out, _, err = e.run(t, "cache", "import", export)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 entries")

	out, _, err = e.run(t, "cache", "prune")
	require.NoError(t, err)
	assert.Contains(t, out, "pruned 0 expired entries")

	out, _, err = e.run(t, "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "entries   1 (0 readings, 1 pairings)")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("plain")))
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("disk"))))
	assert.Equal(t, exitUserError, exitCode(userError(types.ErrInvalidDate)))
}
