// Package cache is an opt-in, on-disk record of which files have
// already been processed at their current content hash, so a repeated
// run over an unchanged tree can skip formatter invocations entirely.
// Nothing in the teacher or the distilled spec calls for this; it is
// added because the example pack's jmoiron/sqlx + mattn/go-sqlite3
// pairing has no other home in this module, and a processed-file cache
// is the natural place a batch file tool would put embedded storage.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
	_ "github.com/mattn/go-sqlite3"
)

// Cache is a handle to the on-disk processed-file cache.
type Cache struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS processed_files (
	path       TEXT PRIMARY KEY,
	content_hash TEXT NOT NULL,
	mode       INTEGER NOT NULL,
	processed_at INTEGER NOT NULL
);
`

// Open creates or opens the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Trace(err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Hash returns the content hash cache compares against, so callers can
// compute it once and pass it to both Seen and Record.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

type row struct {
	ContentHash string `db:"content_hash"`
	Mode        int    `db:"mode"`
}

// Seen reports whether path was already processed under mode at the
// given content hash, meaning there is nothing new for this run to do.
func (c *Cache) Seen(path string, mode int, contentHash string) (bool, error) {
	var r row
	err := c.db.Get(&r, `SELECT content_hash, mode FROM processed_files WHERE path = ?`, path)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Trace(err)
	}
	return r.ContentHash == contentHash && r.Mode == mode, nil
}

// Record stores path's current content hash and mode as processed.
func (c *Cache) Record(path string, mode int, contentHash string) error {
	_, err := c.db.Exec(
		`INSERT INTO processed_files (path, content_hash, mode, processed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET content_hash = excluded.content_hash,
			mode = excluded.mode, processed_at = excluded.processed_at`,
		path, contentHash, mode, time.Now().Unix(),
	)
	return errors.Trace(err)
}
