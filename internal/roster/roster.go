// Package roster evaluates a team: every member's reading and every pairing,
// read from a TOML file such as
//
//	team = "Platform"
//
//	[[member]]
//	name = "Aiko"
//	birth = 1994-01-21
//
// Birth dates are TOML local dates, unquoted.
package roster

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

type member struct {
	Name  string         `toml:"name"`
	Birth toml.LocalDate `toml:"birth"`
}

type file struct {
	Team    string   `toml:"team"`
	Members []member `toml:"member"`
}

// Roster is a parsed team file.
type Roster struct {
	Team    string
	Members []types.Subject
}

// Load reads and parses the roster at path.
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return Roster{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a roster. Every member needs a unique, non-empty name and a
// valid birth date; at least one member is required.
func Parse(data []byte) (Roster, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Roster{}, fmt.Errorf("parse roster: %w", err)
	}
	if len(f.Members) == 0 {
		return Roster{}, types.ErrEmptyRoster
	}

	r := Roster{Team: f.Team, Members: make([]types.Subject, 0, len(f.Members))}
	seen := make(map[string]bool, len(f.Members))
	for i, m := range f.Members {
		if m.Name == "" {
			return Roster{}, fmt.Errorf("member %d: %w", i+1, types.ErrUnnamedMember)
		}
		if seen[m.Name] {
			return Roster{}, fmt.Errorf("%q: %w", m.Name, types.ErrDuplicateMember)
		}
		seen[m.Name] = true

		d := types.Date{Year: m.Birth.Year, Month: m.Birth.Month, Day: m.Birth.Day}
		if err := d.Validate(); err != nil {
			return Roster{}, fmt.Errorf("%q: %w", m.Name, err)
		}
		r.Members = append(r.Members, types.Subject{Name: m.Name, Date: d})
	}
	return r, nil
}

// Result holds one reading per member, in roster order, and one pairing per
// unordered pair (i < j), ordered by i then j.
type Result struct {
	Team     string          `json:"team,omitempty" yaml:"team,omitempty"`
	Readings []types.Reading `json:"readings" yaml:"readings"`
	Pairings []types.Pairing `json:"pairings" yaml:"pairings"`
}

// Run evaluates r with at most limit engine calls in flight (limit <= 0 means
// no limit). It fails on the first engine error, on any result that fails
// its consistency check, or when ctx is cancelled.
func Run(ctx context.Context, eng types.Engine, r Roster, limit int) (Result, error) {
	n := len(r.Members)
	if n == 0 {
		return Result{}, types.ErrEmptyRoster
	}
	res := Result{
		Team:     r.Team,
		Readings: make([]types.Reading, n),
		Pairings: make([]types.Pairing, n*(n-1)/2),
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, m := range r.Members {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rd, err := eng.Read(m)
			if err != nil {
				return fmt.Errorf("%q: %w", m.Name, err)
			}
			if err := rd.Check(); err != nil {
				return fmt.Errorf("%q: %w", m.Name, err)
			}
			res.Readings[i] = rd
			return nil
		})
	}

	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b, slot := r.Members[i], r.Members[j], k
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := eng.Compare(a, b)
				if err != nil {
					return fmt.Errorf("%q × %q: %w", a.Name, b.Name, err)
				}
				if err := p.Check(); err != nil {
					return fmt.Errorf("%q × %q: %w", a.Name, b.Name, err)
				}
				res.Pairings[slot] = p
				return nil
			})
			k++
		}
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
