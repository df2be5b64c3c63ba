package datastore

import (
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/errors"
	"github.com/streamsurvey/rba-georef/internal/logging"
)

// SQLiteStore implements DataStore for SQLite
type SQLiteStore struct {
	DataStore
	Settings *conf.Settings
}

// Open sets up the SQLite database connection and migrates the schema.
func (store *SQLiteStore) Open() error {
	path := store.Settings.Output.SQLite.Path

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: createGormLogger(store.Settings.Debug)})
	if err != nil {
		return errors.Newf("failed to open SQLite database %s: %w", path, err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			FileContext(path).
			Build()
	}

	store.DB = db
	if log := logging.ForService("datastore"); log != nil {
		log.Debug("opened SQLite feature store", "path", path)
	}
	return performAutoMigration(db)
}

// Close closes the underlying connection pool.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// createGormLogger keeps gorm quiet unless debugging; slow queries and
// errors still surface.
func createGormLogger(debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
