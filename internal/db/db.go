package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/andy/piecework/internal/domain"
	_ "github.com/mutecomm/go-sqlcipher/v4"
)

const cipherPageSize = 4096

type DB struct {
	*sql.DB
}

// Open opens an encrypted SQLite database with the given password.
// dbPath is the full path to the database file. Connection failures wrap domain.ErrStoreUnavailable.
func Open(dbPath, password string) (*DB, error) {
	// Create parent directories if they don't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if password == "" {
		return nil, fmt.Errorf("%w: encryption key is empty", domain.ErrStoreUnavailable)
	}

	connStr := dsn(dbPath, password)

	sqlDB, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", domain.ErrStoreUnavailable, err)
	}

	// A single connection keeps PRAGMAs and transactions on the same handle
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to enable foreign keys: %v", domain.ErrStoreUnavailable, err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to enable WAL mode: %v", domain.ErrStoreUnavailable, err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", domain.ErrStoreUnavailable, err)
	}

	// A wrong key only surfaces once a page is read
	var n int
	if err := sqlDB.QueryRow("SELECT count(*) FROM sqlite_master").Scan(&n); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to read database (wrong key?): %v", domain.ErrStoreUnavailable, err)
	}

	return &DB{DB: sqlDB}, nil
}

// dsn builds the go-sqlcipher connection string. The driver quotes the key
// as PRAGMA key = "<key>", so embedded double quotes are doubled.
func dsn(dbPath, password string) string {
	key := strings.ReplaceAll(password, `"`, `""`)
	return fmt.Sprintf("%s?_pragma_key=%s&_pragma_cipher_page_size=%d",
		dbPath, url.QueryEscape(key), cipherPageSize)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
