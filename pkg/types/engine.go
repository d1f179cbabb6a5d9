package types

import "time"

// Engine turns dates into readings and pairs of readings into assessments.
// Implementations are pure: the same input always yields the same output, so
// results may be cached by input without invalidation.
type Engine interface {
	// Read computes the reading for one subject. It returns an error wrapping
	// ErrInvalidDate when the date is malformed.
	Read(s Subject) (Reading, error)

	// Compare computes both readings and the four compatibility verdicts.
	Compare(a, b Subject) (Pairing, error)
}

// ReadingStore memoizes engine output keyed by input. Entries expire after
// the TTL given at Put time.
type ReadingStore interface {
	GetReading(s Subject) (Reading, error)
	PutReading(s Subject, r Reading, ttl time.Duration) error
	GetPairing(a, b Subject) (Pairing, error)
	PutPairing(a, b Subject, p Pairing, ttl time.Duration) error
}

// CacheStore is a ReadingStore with an attach lifecycle. Operations on a
// detached store return ErrStoreDetached.
type CacheStore interface {
	ReadingStore
	Attach(config Config) error
	Detach() error
}
