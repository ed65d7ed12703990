package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"study-assistant/internal/config"
	"study-assistant/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.uber.org/zap"
)

// NewSQLXDB opens the database described by cfg and verifies the connection.
func NewSQLXDB(cfg config.DBConfig) (*sqlx.DB, error) {
	if cfg.Driver != "sqlite3" {
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	dsn := cfg.DSN
	if path := sqlitePath(dsn); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	logger.Get().Info("Successfully connected to database", zap.String("driver", cfg.Driver), zap.String("dsn", cfg.DSN))
	return db, nil
}

// sqlitePath returns the file path of a sqlite DSN, or "" for in-memory databases.
func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}
