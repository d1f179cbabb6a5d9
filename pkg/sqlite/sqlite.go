// Package sqlite exposes the SQLite reading cache while keeping its
// implementation internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/internal/sqlite"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// NewStore creates a detached SQLite cache store. Call Attach with a Config
// whose Backend is types.BackendSQLite before use.
//
// Example:
//
//	store := sqlite.NewStore(nil)
//	err := store.Attach(types.Config{
//	    Backend:  types.BackendSQLite,
//	    DataDir:  dataDir,
//	    CacheTTL: types.DefaultCacheTTL,
//	})
//	defer store.Detach()
func NewStore(log *zap.Logger) types.CacheStore {
	return sqlite.NewStore(log)
}
