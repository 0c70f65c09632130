package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const settingsTable = "app_settings"

// SQLiteKeyValueRepository stores settings in an embedded SQLite database
type SQLiteKeyValueRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// Ensure SQLiteKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*SQLiteKeyValueRepository)(nil)

// NewSQLiteKeyValueRepository opens (or creates) the database at path and ensures the schema
func NewSQLiteKeyValueRepository(ctx context.Context, path string) (*SQLiteKeyValueRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer connection
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS app_settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}

	return &SQLiteKeyValueRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Get returns the value stored under key
func (r *SQLiteKeyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.sb.
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select: %w", err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key
func (r *SQLiteKeyValueRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.sb.
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Ping checks the database connection
func (r *SQLiteKeyValueRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database
func (r *SQLiteKeyValueRepository) Close() error {
	return r.db.Close()
}
