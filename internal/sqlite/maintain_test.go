package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

func TestStats(t *testing.T) {
	s, c := attached(t)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Zero(t, st.Entries)
	assert.True(t, st.Oldest.IsZero())

	s1, r1 := reading(t, "", 1994, 1, 21)
	s2, r2 := reading(t, "", 2000, 1, 1)
	require.NoError(t, s.PutReading(s1, r1, time.Minute))
	c.advance(time.Second)
	require.NoError(t, s.PutReading(s2, r2, time.Hour))
	require.NoError(t, s.PutPairing(s1, s2, types.Pairing{A: r1, B: r2}, time.Hour))
	c.advance(2 * time.Minute)

	st, err = s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Entries)
	assert.Equal(t, 2, st.Readings)
	assert.Equal(t, 1, st.Pairings)
	assert.Equal(t, 1, st.Expired)
	assert.Equal(t, time.Second, st.Newest.Sub(st.Oldest))
	assert.Equal(t, s.Path(), st.Path)
}

func TestPrune(t *testing.T) {
	s, c := attached(t)
	s1, r1 := reading(t, "", 1994, 1, 21)
	s2, r2 := reading(t, "", 2000, 1, 1)
	require.NoError(t, s.PutReading(s1, r1, time.Minute))
	require.NoError(t, s.PutReading(s2, r2, time.Hour))

	n, err := s.Prune()
	require.NoError(t, err)
	assert.Zero(t, n)

	c.advance(time.Minute)
	n, err = s.Prune()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.GetReading(s2)
	assert.NoError(t, err)
}

func TestClear(t *testing.T) {
	s, _ := attached(t)
	s1, r1 := reading(t, "", 1994, 1, 21)
	require.NoError(t, s.PutReading(s1, r1, time.Minute))

	n, err := s.Clear()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = s.GetReading(s1)
	assert.ErrorIs(t, err, types.ErrCacheMiss)
}

func TestExportImport(t *testing.T) {
	s, c := attached(t)
	s1, r1 := reading(t, "Aiko", 1994, 1, 21)
	s2, r2 := reading(t, "Ben", 2000, 1, 1)
	require.NoError(t, s.PutReading(s1, r1, time.Hour))
	require.NoError(t, s.PutReading(s2, r2, time.Second))
	c.advance(time.Second)

	path := filepath.Join(t.TempDir(), "cache.jsonl")
	n, err := s.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "expired entries are not exported")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"kind":"reading"`)
	assert.Contains(t, lines[0], `"day_pillar":"丁未"`)

	_, err = s.Clear()
	require.NoError(t, err)

	n, err = s.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got, err := s.GetReading(s1)
	require.NoError(t, err)
	assert.Equal(t, r1, got)
}

func TestImportSkipsBadLines(t *testing.T) {
	s, c := attached(t)
	live := c.now().Add(time.Hour).Format(time.RFC3339Nano)
	dead := c.now().Add(-time.Hour).Format(time.RFC3339Nano)

	path := filepath.Join(t.TempDir(), "in.jsonl")
	content := strings.Join([]string{
		`not json`,
		``,
		`{"key":"","kind":"reading","payload":{},"expires_at":"` + live + `"}`,
		`{"key":"k1","kind":"bogus","payload":{},"expires_at":"` + live + `"}`,
		`{"key":"k2","kind":"reading","payload":{},"expires_at":"` + dead + `"}`,
		`{"key":"k3","kind":"pairing","payload":{},"expires_at":"` + live + `"}`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	n, err := s.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Pairings)
}

func TestImportMissingFile(t *testing.T) {
	s, _ := attached(t)
	_, err := s.Import(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
