// Package sqlite implements the SQLite reading cache. Entries are keyed by
// engine input and hold the JSON-encoded output together with an expiry
// time; expired rows are ignored on read and removed by Prune.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// DBFile is the database file name inside the data directory.
const DBFile = "readings.db"

// Entry kinds.
const (
	KindReading = "reading"
	KindPairing = "pairing"
)

var _ types.ReadingStore = (*Store)(nil)

// Store implements types.ReadingStore on SQLite. A Store must be attached
// before use and is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	path     string
	log      *zap.Logger
	now      func() time.Time
}

// NewStore creates a detached store. A nil logger discards log output.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log, now: time.Now}
}

// Attach opens (or creates) the database under config.DataDir.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if config.Backend != types.BackendSQLite {
		return fmt.Errorf("reading store needs backend %q, got %q: %w",
			types.BackendSQLite, config.Backend, types.ErrBackendUnknown)
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, DBFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// One writer at a time; sqlite would answer SQLITE_BUSY otherwise.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.path = path
	s.config = config
	s.attached = true
	s.log.Debug("reading store attached", zap.String("path", path))
	return nil
}

// Detach closes the database. It is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.attached = false
	return nil
}

// Path returns the database file path, or "" while detached.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// GetReading returns the live cached reading for subj or ErrCacheMiss.
func (s *Store) GetReading(subj types.Subject) (types.Reading, error) {
	var r types.Reading
	if err := s.get(readingKey(subj), &r); err != nil {
		return types.Reading{}, err
	}
	return r, nil
}

// PutReading stores r for subj until ttl elapses.
func (s *Store) PutReading(subj types.Subject, r types.Reading, ttl time.Duration) error {
	return s.put(readingKey(subj), KindReading, r, ttl)
}

// GetPairing returns the live cached pairing for (a, b) or ErrCacheMiss.
func (s *Store) GetPairing(a, b types.Subject) (types.Pairing, error) {
	var p types.Pairing
	if err := s.get(pairingKey(a, b), &p); err != nil {
		return types.Pairing{}, err
	}
	return p, nil
}

// PutPairing stores p for (a, b) until ttl elapses.
func (s *Store) PutPairing(a, b types.Subject, p types.Pairing, ttl time.Duration) error {
	return s.put(pairingKey(a, b), KindPairing, p, ttl)
}

func (s *Store) get(key string, dst any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	var payload string
	var expires int64
	err := s.db.QueryRow(selectEntry, key).Scan(&payload, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("select %s: %w", key, err)
	}
	if expires <= s.now().UnixNano() {
		return types.ErrCacheMiss
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		// A row we cannot decode is as good as absent.
		s.log.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		return types.ErrCacheMiss
	}
	return nil
}

func (s *Store) put(key, kind string, v any, ttl time.Duration) error {
	if ttl <= 0 {
		return types.ErrTTLInvalid
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	now := s.now()
	_, err = s.db.Exec(upsertEntry,
		generateUUID(), key, kind, string(payload),
		now.UnixNano(), now.Add(ttl).UnixNano())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// generateUUID generates a UUID v7 for entry ids.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// readingKey and pairingKey quote names so that no name can forge another
// subject's key. Order matters for pairings: messages name both sides.
func readingKey(s types.Subject) string {
	return fmt.Sprintf("%s|%q|%s", KindReading, s.Name, s.Date)
}

func pairingKey(a, b types.Subject) string {
	return fmt.Sprintf("%s|%q|%s|%q|%s", KindPairing, a.Name, a.Date, b.Name, b.Date)
}
