package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/geemus/ecto"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by Get for a missing (bucket, key).
var ErrNotFound = errors.New("store: record not found")

// Store is a typed record store over SQLite. Values pass through
// ecto.Dump on the way in and ecto.Load on the way out.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and
// applies pragmas and the schema. Idempotent.
//
// The database is configured with WAL mode for concurrent reads, a
// 5-second busy timeout, and a single-writer connection pool (SQLite
// supports one writer at a time).
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put dumps a canonical value to its storage-native form and writes
// it under (bucket, key), replacing any existing record. The value's
// textual type descriptor is stored alongside so reads can verify
// they use a compatible type.
func (s *Store) Put(ctx context.Context, bucket, key string, t ecto.Type, canonical any) error {
	native, err := ecto.Dump(t, canonical)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}
	encoded, err := encodeNative(native)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (bucket, key, type, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(bucket, key) DO UPDATE SET type = excluded.type, value = excluded.value
	`, bucket, key, t.String(), encoded)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Get reads the record under (bucket, key), decodes its native form
// by the given type descriptor, and loads it back to canonical form.
// The stored descriptor must match the requested one.
func (s *Store) Get(ctx context.Context, bucket, key string, t ecto.Type) (any, error) {
	var storedType string
	var encoded sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT type, value FROM records WHERE bucket = ? AND key = ?
	`, bucket, key).Scan(&storedType, &encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}
	if storedType != t.String() {
		return nil, fmt.Errorf("get %s/%s: stored as %s, requested %s", bucket, key, storedType, t)
	}

	native, err := decodeNative(t, encoded)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}
	canonical, err := ecto.Load(t, native)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}
	return canonical, nil
}

// Delete removes the record under (bucket, key). Deleting a missing
// record is not an error.
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM records WHERE bucket = ? AND key = ?
	`, bucket, key)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Keys lists the keys in a bucket in lexical order.
func (s *Store) Keys(ctx context.Context, bucket string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM records WHERE bucket = ? ORDER BY key
	`, bucket)
	if err != nil {
		return nil, fmt.Errorf("keys %s: %w", bucket, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("keys %s: %w", bucket, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("keys %s: %w", bucket, err)
	}
	return keys, nil
}
