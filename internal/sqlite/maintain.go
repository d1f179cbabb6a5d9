package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// Stats summarizes the cache contents.
type Stats struct {
	Path     string    `json:"path" yaml:"path"`
	Entries  int       `json:"entries" yaml:"entries"`
	Readings int       `json:"readings" yaml:"readings"`
	Pairings int       `json:"pairings" yaml:"pairings"`
	Expired  int       `json:"expired" yaml:"expired"`
	Oldest   time.Time `json:"oldest,omitempty" yaml:"oldest,omitempty"`
	Newest   time.Time `json:"newest,omitempty" yaml:"newest,omitempty"`
}

// Record is one exported cache entry, a line of the JSONL export.
type Record struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Stats counts entries by kind and by liveness.
func (s *Store) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return Stats{}, types.ErrStoreDetached
	}
	st := Stats{Path: s.path}
	var oldest, newest int64
	err := s.db.QueryRow(selectStats, s.now().UnixNano()).
		Scan(&st.Entries, &st.Readings, &st.Pairings, &st.Expired, &oldest, &newest)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if st.Entries > 0 {
		st.Oldest = time.Unix(0, oldest).UTC()
		st.Newest = time.Unix(0, newest).UTC()
	}
	return st, nil
}

// Prune deletes expired entries and returns how many were removed.
func (s *Store) Prune() (int64, error) {
	return s.exec("prune", deleteExpired, s.now().UnixNano())
}

// Clear deletes every entry.
func (s *Store) Clear() (int64, error) {
	return s.exec("clear", deleteAll)
}

func (s *Store) exec(op, query string, args ...any) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("cache "+op, zap.Int64("rows", n))
	return n, nil
}

// Export writes every live entry to path as JSONL and returns the count.
func (s *Store) Export(path string) (int, error) {
	recs, err := s.live()
	if err != nil {
		return 0, err
	}
	lines := make([]json.RawMessage, 0, len(recs))
	for _, r := range recs {
		b, err := json.Marshal(r)
		if err != nil {
			return 0, fmt.Errorf("encode %s: %w", r.Key, err)
		}
		lines = append(lines, b)
	}
	if err := writeJSONL(path, lines); err != nil {
		return 0, fmt.Errorf("export %s: %w", path, err)
	}
	return len(lines), nil
}

// Import loads a JSONL export. Malformed lines and entries that have
// already expired are skipped. Existing keys are overwritten.
func (s *Store) Import(path string) (int, error) {
	lines, skipped, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	now := s.now()
	n := 0
	for _, line := range lines {
		var r Record
		if err := json.Unmarshal(line, &r); err != nil || r.Key == "" || !json.Valid(r.Payload) {
			skipped++
			continue
		}
		if r.Kind != KindReading && r.Kind != KindPairing {
			skipped++
			continue
		}
		if !r.ExpiresAt.After(now) {
			continue
		}
		if r.ID == "" {
			r.ID = generateUUID()
		}
		_, err := s.db.Exec(upsertEntry, r.ID, r.Key, r.Kind, string(r.Payload),
			r.CreatedAt.UnixNano(), r.ExpiresAt.UnixNano())
		if err != nil {
			return n, fmt.Errorf("import %s: %w", r.Key, err)
		}
		n++
	}
	if skipped > 0 {
		s.log.Warn("import skipped malformed lines", zap.String("path", path), zap.Int("skipped", skipped))
	}
	return n, nil
}

func (s *Store) live() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	rows, err := s.db.Query(selectLive, s.now().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("select live: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var payload string
		var created, expires int64
		if err := rows.Scan(&r.ID, &r.Key, &r.Kind, &payload, &created, &expires); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.Payload = json.RawMessage(payload)
		r.CreatedAt = time.Unix(0, created).UTC()
		r.ExpiresAt = time.Unix(0, expires).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}
