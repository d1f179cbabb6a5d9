// Package sanmei is the public entry point to the chart and compatibility
// engine.
//
//	eng := sanmei.NewEngine()
//	r, err := eng.Read(types.Subject{Date: types.Date{Year: 1994, Month: 1, Day: 21}})
//
// Results depend only on their input. WithCache memoizes them in any
// types.ReadingStore, for example the one from pkg/sqlite.
package sanmei

import (
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/internal/engine"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.3.0"

type options struct {
	log   *zap.Logger
	store types.ReadingStore
	ttl   time.Duration
}

// Option configures NewEngine.
type Option func(*options)

// WithLogger sets the logger used for table faults and cache warnings.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithCache memoizes results in store for ttl. A non-positive ttl means
// types.DefaultCacheTTL.
func WithCache(store types.ReadingStore, ttl time.Duration) Option {
	return func(o *options) {
		o.store = store
		o.ttl = ttl
	}
}

// NewEngine returns an Engine, cached if WithCache was given.
func NewEngine(opts ...Option) types.Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	eng := engine.New(o.log)
	if o.store == nil {
		return eng
	}
	if o.ttl <= 0 {
		o.ttl = types.DefaultCacheTTL
	}
	return engine.NewCached(eng, o.store, o.ttl, o.log)
}
