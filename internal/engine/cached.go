package engine

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

var _ types.Engine = (*Cached)(nil)

// Cached memoizes another Engine in a ReadingStore. Because readings depend
// only on their input, entries never need invalidation; the TTL only bounds
// how long the store keeps them. Store failures are logged and bypassed.
type Cached struct {
	inner types.Engine
	store types.ReadingStore
	ttl   time.Duration
	log   *zap.Logger
}

// NewCached wraps inner with store. A nil logger discards log output.
func NewCached(inner types.Engine, store types.ReadingStore, ttl time.Duration, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{inner: inner, store: store, ttl: ttl, log: log}
}

// Read returns the cached reading for s or computes and stores it.
// Readings that fail Check are returned but never stored.
func (c *Cached) Read(s types.Subject) (types.Reading, error) {
	r, err := c.store.GetReading(s)
	if err == nil {
		c.log.Debug("reading cache hit", zap.Stringer("date", s.Date))
		return r, nil
	}
	c.miss(err)

	r, err = c.inner.Read(s)
	if err != nil {
		return types.Reading{}, err
	}
	if r.Check() == nil {
		if err := c.store.PutReading(s, r, c.ttl); err != nil {
			c.log.Warn("cache put failed", zap.Error(err))
		}
	}
	return r, nil
}

// Compare returns the cached pairing for (a, b) or computes and stores it.
func (c *Cached) Compare(a, b types.Subject) (types.Pairing, error) {
	p, err := c.store.GetPairing(a, b)
	if err == nil {
		c.log.Debug("pairing cache hit", zap.Stringer("a", a.Date), zap.Stringer("b", b.Date))
		return p, nil
	}
	c.miss(err)

	p, err = c.inner.Compare(a, b)
	if err != nil {
		return types.Pairing{}, err
	}
	if p.Check() == nil {
		if err := c.store.PutPairing(a, b, p, c.ttl); err != nil {
			c.log.Warn("cache put failed", zap.Error(err))
		}
	}
	return p, nil
}

func (c *Cached) miss(err error) {
	if !errors.Is(err, types.ErrCacheMiss) {
		c.log.Warn("cache get failed", zap.Error(err))
	}
}
