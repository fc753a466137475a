// Package sqlite implements securestore.Store on a local SQLite database
// file. Values are encrypted before they reach the database; keys are stored
// in clear so they can be looked up.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"tunisiaguide/pkg/securestore"
)

// Migrations holds the goose migrations for the store schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	itemsTable = "secure_items"
	dialect    = "sqlite3"
)

// Options configures the SQLite store.
type Options struct {
	// Path is the database file. Parent directories are created.
	Path string
	// Secret is the passphrase the value encryption key is derived from.
	Secret string
	// BusyTimeout is how long SQLite waits on a locked database before failing.
	BusyTimeout time.Duration
}

// Store is a securestore.Store backed by SQLite.
type Store struct {
	db      *sql.DB
	builder *goqu.Database
	sealer  *sealer
}

var _ securestore.Store = (*Store)(nil)

// Open opens (creating if needed) the database at options.Path. It does not
// migrate the schema; call Migrate or run the migrate command first.
func Open(ctx context.Context, options Options) (*Store, error) {
	sl, err := newSealer(options.Secret)
	if err != nil {
		return nil, fmt.Errorf("could not create sealer: %w", err)
	}

	if dir := filepath.Dir(options.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("could not create store directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		options.Path, options.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite: %w", err)
	}
	// one writer at a time; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not ping sqlite: %w", err)
	}

	return &Store{
		db:      db,
		builder: goqu.Dialect(dialect).DB(db),
		sealer:  sl,
	}, nil
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("could not close sqlite: %w", err)
	}

	return nil
}

// Migrate applies every pending goose migration to db.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate secure store: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var blob []byte
	found, err := s.builder.From(itemsTable).
		Prepared(true).
		Select("value").
		Where(goqu.C("key").Eq(key)).
		ScanValContext(ctx, &blob)
	if err != nil {
		return "", false, fmt.Errorf("could not read %q: %w", key, err)
	}
	if !found {
		return "", false, nil
	}

	plain, err := s.sealer.open(key, blob)
	if err != nil {
		return "", false, fmt.Errorf("could not open %q: %w", key, err)
	}

	return string(plain), true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	blob, err := s.sealer.seal(key, []byte(value))
	if err != nil {
		return fmt.Errorf("could not seal %q: %w", key, err)
	}

	_, err = s.builder.Insert(itemsTable).
		Prepared(true).
		Rows(goqu.Record{
			"key":        key,
			"value":      blob,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.L("excluded.value"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.builder.Delete(itemsTable).
		Prepared(true).
		Where(goqu.C("key").Eq(key)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete %q: %w", key, err)
	}

	return nil
}
