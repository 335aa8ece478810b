// Package client holds the local state kept by cmd/vaultcheck between runs.
package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/models"
)

// RevisionCache stores the last vault revision observed on the server so a
// later run can tell whether a full sync is needed.
type RevisionCache interface {
	Get(ctx context.Context) (revision int64, found bool, err error)
	Set(ctx context.Context, revision int64) error
	Close() error
}

type sqliteRevisionCache struct {
	db     *sql.DB
	logger *logger.Logger
}

const createRevisionCacheTable = `
CREATE TABLE IF NOT EXISTS revision_cache (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    revision   INTEGER NOT NULL,
    updated_at TEXT    NOT NULL
)`

const getCachedRevision = `SELECT revision FROM revision_cache WHERE id = 1`

const setCachedRevision = `
INSERT INTO revision_cache (id, revision, updated_at) VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET revision = excluded.revision, updated_at = excluded.updated_at`

// NewRevisionCache opens (creating if necessary) a sqlite database at path
// and makes sure the cache table exists.
func NewRevisionCache(ctx context.Context, path string, log *logger.Logger) (RevisionCache, error) {
	if err := createCacheFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewRevisionCache").Msg("error creating cache file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewRevisionCache").Msg("error opening cache database")
		return nil, fmt.Errorf("error opening cache database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting cache database: %w", err)
	}

	if _, err = conn.ExecContext(ctx, createRevisionCacheTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error preparing cache table: %w", err)
	}

	return &sqliteRevisionCache{db: conn, logger: log}, nil
}

func (c *sqliteRevisionCache) Get(ctx context.Context) (int64, bool, error) {
	var revision int64

	err := c.db.QueryRowContext(ctx, getCachedRevision).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*sqliteRevisionCache.Get").Msg("error reading cached revision")
		return 0, false, fmt.Errorf("error reading cached revision: %w", err)
	}

	return revision, true, nil
}

func (c *sqliteRevisionCache) Set(ctx context.Context, revision int64) error {
	_, err := c.db.ExecContext(ctx, setCachedRevision, revision, models.NowTimestamp())
	if err != nil {
		c.logger.Err(err).Str("func", "*sqliteRevisionCache.Set").Msg("error storing cached revision")
		return fmt.Errorf("error storing cached revision: %w", err)
	}

	return nil
}

func (c *sqliteRevisionCache) Close() error {
	return c.db.Close()
}

func createCacheFileIfNotExists(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating cache dir: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating cache file: %w", err)
		}
		f.Close()
	}

	return nil
}
