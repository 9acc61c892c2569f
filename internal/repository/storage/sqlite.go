package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite storage path is required")
	}

	conn, err := sql.Open("sqlite", path+"?"+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - brings the schema up to the latest migration.
func (that *Storage) Init() error {
	if err := MigrateUp(that.Connection); err != nil {
		return fmt.Errorf("can't migrate database: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
