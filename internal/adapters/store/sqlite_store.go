package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the SessionStore interface. It is
// the client's durable default, standing in for the browser's local storage.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite session store at the given path
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS session_store (
			key TEXT PRIMARY KEY,
			value TEXT
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Load reads the persisted session; missing keys yield the zero session
func (s *SQLiteStore) Load(ctx context.Context) (core.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session_store`)
	if err != nil {
		return core.Session{}, fmt.Errorf("failed to query session store: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return core.Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return core.Session{}, fmt.Errorf("failed to read session rows: %w", err)
	}

	return core.Session{
		Authenticated: values[keyAuthenticated] == "true",
		Email:         values[keyUserEmail],
		Name:          values[keyUserName],
	}, nil
}

// Save persists the session
func (s *SQLiteStore) Save(ctx context.Context, session core.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO session_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	authenticated := ""
	if session.Authenticated {
		authenticated = "true"
	}
	pairs := [][2]string{
		{keyAuthenticated, authenticated},
		{keyUserEmail, session.Email},
		{keyUserName, session.Name},
	}
	for _, pair := range pairs {
		if _, err := tx.ExecContext(ctx, upsert, pair[0], pair[1]); err != nil {
			return fmt.Errorf("failed to write session key %s: %w", pair[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	s.logger.Debug("Session persisted", zap.String("email", session.Email))
	return nil
}

// Clear removes all persisted session fields
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_store WHERE key IN (?, ?, ?)`,
		keyAuthenticated, keyUserEmail, keyUserName)
	if err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
