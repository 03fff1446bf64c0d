// Package iocache caches extracted commit collections between runs.
package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver (pure Go)

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// Table and default database file names.
const (
	tableName  = "gitpulse_collections"
	dbFileName = ".gitpulse_cache.db"
)

// CacheStoreImpl handles durable storage operations using various
// database backends.
type CacheStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.CacheStore = &CacheStoreImpl{} // Compile-time check

// NewCacheStore initializes and returns a new CacheStore based on the
// backend type. NoneBackend returns a store that never hits.
func NewCacheStore(backend schema.DatabaseBackend, connStr string) (contract.CacheStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = DefaultDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// A single open connection avoids "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr: user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr: host=localhost port=5432 user=postgres dbname=mydb
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &CacheStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s cache database: %w", backend, err)
	}

	store := &CacheStoreImpl{db: db, backend: backend}
	if err := store.createTable(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// DefaultDBFilePath returns the default SQLite database path in the
// user's home directory.
func DefaultDBFilePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, dbFileName)
}

// createTable sets up the cache table with a key, a blob for the
// encoded collection, and a creation timestamp.
func (s *CacheStoreImpl) createTable() error {
	blobType := "BLOB"
	if s.backend == schema.PostgreSQLBackend {
		blobType = "BYTEA"
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			value %s NOT NULL,
			created_at BIGINT NOT NULL
		);
	`, tableName, blobType)

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}
	return nil
}

// placeholder returns the bind-variable syntax for the backend.
func (s *CacheStoreImpl) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Get implements the contract.CacheStore interface.
func (s *CacheStoreImpl) Get(key string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, nil
	}
	query := fmt.Sprintf(`SELECT value FROM %s WHERE cache_key = %s`, tableName, s.placeholder(1))

	var value []byte
	err := s.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("cache get failed for key %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements the contract.CacheStore interface.
func (s *CacheStoreImpl) Set(key string, value []byte) error {
	if s.db == nil {
		return nil
	}
	var query string
	if s.backend == schema.PostgreSQLBackend {
		query = fmt.Sprintf(`
			INSERT INTO %s (cache_key, value, created_at) VALUES ($1, $2, $3)
			ON CONFLICT (cache_key) DO UPDATE SET value = $2, created_at = $3`, tableName)
	} else {
		query = fmt.Sprintf(`REPLACE INTO %s (cache_key, value, created_at) VALUES (?, ?, ?)`, tableName)
	}
	if _, err := s.db.Exec(query, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("cache set failed for key %q: %w", key, err)
	}
	return nil
}

// Count implements the contract.CacheStore interface.
func (s *CacheStoreImpl) Count() (int, error) {
	if s.db == nil {
		return 0, nil
	}
	var count int
	if err := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tableName)).Scan(&count); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return count, nil
}

// Clear implements the contract.CacheStore interface.
func (s *CacheStoreImpl) Clear() error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s`, tableName)); err != nil {
		return fmt.Errorf("cache clear failed: %w", err)
	}
	return nil
}

// Close implements the contract.CacheStore interface.
func (s *CacheStoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
