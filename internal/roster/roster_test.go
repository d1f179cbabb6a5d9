package roster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mesh-intelligence/sanmei/internal/engine"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const team = `
team = "Platform"

[[member]]
name = "Aiko"
birth = 1994-01-21

[[member]]
name = "Ben"
birth = 2000-01-01

[[member]]
name = "Chen"
birth = 1985-03-10
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(team))
	require.NoError(t, err)

	want := Roster{
		Team: "Platform",
		Members: []types.Subject{
			{Name: "Aiko", Date: types.Date{Year: 1994, Month: 1, Day: 21}},
			{Name: "Ben", Date: types.Date{Year: 2000, Month: 1, Day: 1}},
			{Name: "Chen", Date: types.Date{Year: 1985, Month: 3, Day: 10}},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", `team = "x"`, types.ErrEmptyRoster},
		{"unnamed", "[[member]]\nbirth = 1994-01-21\n", types.ErrUnnamedMember},
		{"duplicate", "[[member]]\nname = \"A\"\nbirth = 1994-01-21\n[[member]]\nname = \"A\"\nbirth = 2000-01-01\n", types.ErrDuplicateMember},
		{"no birth", "[[member]]\nname = \"A\"\n", types.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("[[member]\nname="))
	assert.Error(t, err, "malformed TOML")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.toml")
	require.NoError(t, os.WriteFile(path, []byte(team), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Members, 3)

	_, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	r, err := Parse([]byte(team))
	require.NoError(t, err)
	eng := engine.New(nil)

	got, err := Run(context.Background(), eng, r, 2)
	require.NoError(t, err)

	// Sequential evaluation is the reference.
	want := Result{Team: "Platform"}
	for _, m := range r.Members {
		rd, err := eng.Read(m)
		require.NoError(t, err)
		want.Readings = append(want.Readings, rd)
	}
	for i := range r.Members {
		for j := i + 1; j < len(r.Members); j++ {
			p, err := eng.Compare(r.Members[i], r.Members[j])
			require.NoError(t, err)
			want.Pairings = append(want.Pairings, p)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Pairings, 3)
	assert.Equal(t, "Ben", got.Pairings[0].B.Name)
	assert.Equal(t, "Chen", got.Pairings[2].B.Name)
}

func TestRunSingleMember(t *testing.T) {
	r := Roster{Members: []types.Subject{{Name: "Solo", Date: types.Date{Year: 1970, Month: 1, Day: 1}}}}
	got, err := Run(context.Background(), engine.New(nil), r, 0)
	require.NoError(t, err)
	assert.Len(t, got.Readings, 1)
	assert.Empty(t, got.Pairings)
}

func TestRunEmpty(t *testing.T) {
	_, err := Run(context.Background(), engine.New(nil), Roster{}, 0)
	assert.ErrorIs(t, err, types.ErrEmptyRoster)
}

func TestRunCancelled(t *testing.T) {
	r, err := Parse([]byte(team))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, engine.New(nil), r, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// failingEngine fails every Compare after counting it.
type failingEngine struct {
	types.Engine
	compares atomic.Int32
}

var errBoom = errors.New("boom")

func (f *failingEngine) Compare(a, b types.Subject) (types.Pairing, error) {
	f.compares.Add(1)
	return types.Pairing{}, errBoom
}

func TestRunEngineError(t *testing.T) {
	r, err := Parse([]byte(team))
	require.NoError(t, err)
	eng := &failingEngine{Engine: engine.New(nil)}

	_, err = Run(context.Background(), eng, r, 1)
	assert.ErrorIs(t, err, errBoom)
	assert.GreaterOrEqual(t, eng.compares.Load(), int32(1))
}

// brokenEngine returns readings carrying the undefined-star sentinel.
type brokenEngine struct{ types.Engine }

func (brokenEngine) Read(s types.Subject) (types.Reading, error) {
	return types.Reading{Name: s.Name, Group: types.GroupXuHai}, nil
}

func TestRunRejectsInconsistentReading(t *testing.T) {
	r := Roster{Members: []types.Subject{{Name: "X", Date: types.Date{Year: 1970, Month: 1, Day: 1}}}}
	_, err := Run(context.Background(), brokenEngine{engine.New(nil)}, r, 0)
	assert.ErrorIs(t, err, types.ErrUndefinedStar)
}
