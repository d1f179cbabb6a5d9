package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

var _ types.Engine = (*Engine)(nil)

// Engine implements types.Engine. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	log *zap.Logger
}

// New creates an Engine. A nil logger discards log output.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Read computes the reading for s. It returns an error wrapping
// types.ErrInvalidDate for a malformed date. Table-consistency faults are
// logged and left as sentinels in the reading; Reading.Check reports them.
func (e *Engine) Read(s types.Subject) (types.Reading, error) {
	if err := s.Date.Validate(); err != nil {
		return types.Reading{}, fmt.Errorf("read %q: %w", s.Name, err)
	}

	chart, err := Chart(s.Date)
	if err != nil {
		e.fault(s, err)
	}
	group, err := Group(chart.Day)
	if err != nil {
		e.fault(s, err)
	}

	e.log.Debug("reading computed",
		zap.Stringer("date", s.Date),
		zap.Stringer("day_pillar", chart.Day),
		zap.Stringer("center", chart.Stars.Center),
		zap.Stringer("group", group))

	return types.Reading{Name: s.Name, Chart: chart, Group: group}, nil
}

// Compare reads both subjects and assesses the pair.
func (e *Engine) Compare(a, b types.Subject) (types.Pairing, error) {
	ra, err := e.Read(a)
	if err != nil {
		return types.Pairing{}, fmt.Errorf("subject A: %w", err)
	}
	rb, err := e.Read(b)
	if err != nil {
		return types.Pairing{}, fmt.Errorf("subject B: %w", err)
	}
	return types.Pairing{A: ra, B: rb, Assessment: Assess(ra, rb)}, nil
}

// fault records a lookup-table defect. These are never expected in practice.
func (e *Engine) fault(s types.Subject, err error) {
	e.log.Error("table consistency violation",
		zap.Stringer("date", s.Date),
		zap.Bool("undefined_star", errors.Is(err, types.ErrUndefinedStar)),
		zap.Bool("unknown_group", errors.Is(err, types.ErrUnknownGroup)),
		zap.Error(err))
}
