package sessionstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	driftmail "github.com/driftmail/client-go"
)

// SQLiteStore persists sessions in an embedded SQLite database. It
// honors the same contract as FileStore: every mutation is durable when
// the call returns.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite-backed store at path. An empty
// path opens an in-memory database, useful for tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = ":memory:"
	}

	db, err := sql.Open("sqlite", trimmed)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	schema := `CREATE TABLE IF NOT EXISTS sessions (
        user_id TEXT PRIMARY KEY,
        address TEXT NOT NULL,
        password TEXT NOT NULL,
        token TEXT NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the credential stored for userID.
func (s *SQLiteStore) Get(userID string) (driftmail.Credential, bool, error) {
	var cred driftmail.Credential
	row := s.db.QueryRow(
		`SELECT address, password, token FROM sessions WHERE user_id = ?;`, userID)
	err := row.Scan(&cred.Address, &cred.Password, &cred.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return driftmail.Credential{}, false, nil
	}
	if err != nil {
		return driftmail.Credential{}, false, fmt.Errorf("query session: %w", err)
	}
	return cred, true, nil
}

// Put stores the credential for userID.
func (s *SQLiteStore) Put(userID string, cred driftmail.Credential) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (user_id, address, password, token)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(user_id) DO UPDATE SET
             address = excluded.address,
             password = excluded.password,
             token = excluded.token;`,
		userID, cred.Address, cred.Password, cred.Token)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Remove deletes the record for userID.
func (s *SQLiteStore) Remove(userID string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE user_id = ?;`, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
