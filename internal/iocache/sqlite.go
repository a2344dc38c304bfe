package iocache

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnsys"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS occurrences (
	key TEXT PRIMARY KEY,
	species BLOB NOT NULL,
	created_at INTEGER NOT NULL
)`

type sqliteCache struct {
	path string
	db   *sql.DB
}

// NewSQLite opens or creates a persistent cache in the SQLite file at
// path. Cached searches survive restarts.
func NewSQLite(ctx context.Context, path string) (flora.Cache, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, OpenError("sqlite", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError("sqlite", err)
	}
	// SQLite allows only one writer.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, OpenError("sqlite", err)
	}

	slog.Info("Occurrence cache opened", "backend", "sqlite", "path", path)
	return &sqliteCache{path: path, db: db}, nil
}

// Get implements flora.Cache.
func (s *sqliteCache) Get(
	ctx context.Context,
	key string,
) ([]flora.SpeciesAggregate, bool, error) {
	var data []byte
	q := "SELECT species FROM occurrences WHERE key = ?"
	err := s.db.QueryRowContext(ctx, q, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(key, err)
	}

	res, err := decode(data)
	if err != nil {
		return nil, false, ReadError(key, err)
	}
	return res, true, nil
}

// Set implements flora.Cache.
func (s *sqliteCache) Set(
	ctx context.Context,
	key string,
	species []flora.SpeciesAggregate,
) error {
	data, err := encode(species)
	if err != nil {
		return WriteError(key, err)
	}

	q := `INSERT OR REPLACE INTO occurrences (key, species, created_at)
		VALUES (?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q, key, data, time.Now().Unix())
	if err != nil {
		return WriteError(key, err)
	}
	return nil
}

// Close implements flora.Cache.
func (s *sqliteCache) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
