// Package session persists and serves the Garmin Connect OAuth session.
// Credential-based SSO stays outside this binary: token dumps are
// produced by an external authenticator and imported with
// freestride-login.
package session

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Token is the OAuth2 token pair the Connect API accepts.
type Token struct {
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"refresh_token,omitempty"`
	TokenType             string `json:"token_type,omitempty"`
	ExpiresAt             int64  `json:"expires_at"` // unix seconds
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at,omitempty"`
}

// Expired reports whether the access token is past its expiry.
func (t Token) Expired() bool {
	return time.Now().Unix() >= t.ExpiresAt
}

// ParseDump decodes a token dump produced by an external authenticator:
// either the OAuth2 token JSON itself or its base64 encoding (both forms
// the upstream tooling emits).
func ParseDump(data []byte) (Token, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		decoded, err := base64.StdEncoding.DecodeString(string(trimmed))
		if err != nil {
			return Token{}, fmt.Errorf("token dump is neither JSON nor base64: %w", err)
		}
		trimmed = bytes.TrimSpace(decoded)
	}

	var t Token
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return Token{}, fmt.Errorf("parsing token dump: %w", err)
	}
	if t.AccessToken == "" {
		return Token{}, errors.New("token dump has no access_token")
	}
	return t, nil
}

// Store keeps the single OAuth session in a SQLite database under the
// state directory.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session database at dir/session.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS oauth_tokens (
		id                 INTEGER PRIMARY KEY CHECK (id = 1),
		access_token       TEXT NOT NULL,
		refresh_token      TEXT NOT NULL DEFAULT '',
		token_type         TEXT NOT NULL DEFAULT 'Bearer',
		expires_at         INTEGER NOT NULL,
		refresh_expires_at INTEGER NOT NULL DEFAULT 0,
		updated_at         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save replaces the stored session.
func (s *Store) Save(t Token) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO oauth_tokens (id, access_token, refresh_token, token_type, expires_at, refresh_expires_at)
		 VALUES (1, ?, ?, ?, ?, ?)`,
		t.AccessToken, t.RefreshToken, t.TokenType, t.ExpiresAt, t.RefreshTokenExpiresAt,
	)
	return err
}

// Load returns the stored session, or nil when none has been imported.
func (s *Store) Load() (*Token, error) {
	var t Token
	err := s.db.QueryRow(
		`SELECT access_token, refresh_token, token_type, expires_at, refresh_expires_at
		 FROM oauth_tokens WHERE id = 1`,
	).Scan(&t.AccessToken, &t.RefreshToken, &t.TokenType, &t.ExpiresAt, &t.RefreshTokenExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Close closes the session database.
func (s *Store) Close() error {
	return s.db.Close()
}
