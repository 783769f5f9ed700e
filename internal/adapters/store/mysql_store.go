package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of the SessionStore interface, for
// deployments that keep client session state in a shared database
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL session store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS session_store (
			` + "`key`" + ` VARCHAR(64) PRIMARY KEY,
			value VARCHAR(255)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Load reads the persisted session; missing keys yield the zero session
func (s *MySQLStore) Load(ctx context.Context) (core.Session, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT `key`, value FROM session_store")
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
func (s *MySQLStore) Save(ctx context.Context, session core.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := "INSERT INTO session_store (`key`, value) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE value = VALUES(value)"

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
func (s *MySQLStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_store WHERE `key` IN (?, ?, ?)",
		keyAuthenticated, keyUserEmail, keyUserName)
	if err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
