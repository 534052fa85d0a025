// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// DB is a database/sql handle bound to one driver. It knows which
// placeholder format the driver expects and how to classify its errors.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings a connection pool for cfg.Driver.
//
// SQLite is limited to a single open connection so concurrent writers
// queue up instead of failing with "database is locked".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		placeholder sq.PlaceholderFormat
		classifier  ErrorClassificator
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		placeholder = sq.Dollar
		classifier = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		placeholder = sq.Question
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, placeholder, classifier, log), nil
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs fn, retrying with exponential backoff while the returned
// error is classified as [Retryable].
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
