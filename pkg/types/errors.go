package types

import "errors"

// Input errors. These are raised at the boundary, before the engine runs.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrDateOutOfRange  = errors.New("date outside configured range")
	ErrInvalidPillar   = errors.New("invalid pillar code")
	ErrUnknownName     = errors.New("unknown name")
	ErrEmptyRoster     = errors.New("roster has no members")
	ErrDuplicateMember = errors.New("duplicate roster member")
	ErrUnnamedMember   = errors.New("roster member has no name")
)

// Table-consistency errors. A real occurrence means a lookup table is wrong;
// the result must never be shown to an end user as a diagnosis.
var (
	ErrUndefinedStar = errors.New("star classification undefined")
	ErrUnknownGroup  = errors.New("inauspicious group unknown")
)

// Store errors.
var (
	ErrStoreDetached   = errors.New("reading store is not attached")
	ErrAlreadyAttached = errors.New("reading store already attached")
	ErrCacheMiss       = errors.New("cache miss")
)
