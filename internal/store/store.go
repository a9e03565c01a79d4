package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	db *gorm.DB
}

// Open connects to the configured database, retrying with exponential backoff
// until retries attempts have failed.
func Open(ctx context.Context, driver, dsn string, retries int, l *logger.Logger) (*gorm.DB, error) {
	if l == nil {
		l = logger.Nop()
	}

	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		Logger:         NewGormLogger(l),
		TranslateError: true,
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if retries < 1 {
		retries = 1
	}

	var db *gorm.DB
	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		conn, openErr := gorm.Open(dialector, cfg)
		if openErr != nil {
			l.Warning("database not ready", map[string]any{"driver": driver, "attempt": attempt, "err": openErr.Error()})
			return openErr
		}
		sqlDB, dbErr := conn.DB()
		if dbErr != nil {
			return backoff.Permanent(dbErr)
		}
		if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
			l.Warning("database not ready", map[string]any{"driver": driver, "attempt": attempt, "err": pingErr.Error()})
			return pingErr
		}
		db = conn
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries-1)), ctx))
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s after %d attempts: %w", driver, attempt, err)
	}

	l.Info("connected to database", map[string]any{"driver": driver, "attempts": attempt})

	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "." && dsn != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// New migrates the schema and wraps db.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&User{}, &Species{}, &UserPlant{}, &Reading{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Ping reports whether the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps gorm errors onto the service sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrConflict
	default:
		return err
	}
}
