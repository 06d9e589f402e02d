package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/employee-service/internal/config"
	"github.com/MKhiriev/employee-service/internal/logger"

	"github.com/mattn/go-sqlite3" // also registers the "sqlite3" database/sql driver
)

func NewConnectSQLite(ctx context.Context, cfg config.SQLite, log *logger.Logger) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// sqlite serializes writes on a single connection; more connections
	// only produce SQLITE_BUSY errors
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting sqlite database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to sqlite database successfully")

	db := &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewNopErrorClassifier(),
	}

	return db, nil
}

func sqliteError(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	// if sqlite returns error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}

	return 0
}
