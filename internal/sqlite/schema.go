package sqlite

// Times are stored as Unix nanoseconds so that expiry compares numerically.
const createEntries = `CREATE TABLE IF NOT EXISTS entries (
    entry_id TEXT PRIMARY KEY,
    cache_key TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL
);`

const (
	idxEntriesExpires = `CREATE INDEX IF NOT EXISTS idx_entries_expires ON entries(expires_at);`
	idxEntriesKind    = `CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);`
)

// schemaDDL is applied on every Attach; each statement is idempotent.
var schemaDDL = []string{
	createEntries,
	idxEntriesExpires,
	idxEntriesKind,
}

const (
	selectEntry = `SELECT payload, expires_at FROM entries WHERE cache_key = ?`

	upsertEntry = `INSERT INTO entries (entry_id, cache_key, kind, payload, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(cache_key) DO UPDATE SET
    payload = excluded.payload,
    created_at = excluded.created_at,
    expires_at = excluded.expires_at`

	deleteExpired = `DELETE FROM entries WHERE expires_at <= ?`
	deleteAll     = `DELETE FROM entries`

	selectStats = `SELECT
    COUNT(*),
    COALESCE(SUM(CASE WHEN kind = 'reading' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN kind = 'pairing' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0),
    COALESCE(MIN(created_at), 0),
    COALESCE(MAX(created_at), 0)
FROM entries`

	selectLive = `SELECT entry_id, cache_key, kind, payload, created_at, expires_at
FROM entries WHERE expires_at > ? ORDER BY created_at, entry_id`
)
