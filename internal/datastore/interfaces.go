// Package datastore persists georeferenced survey points to a database
// for downstream GIS viewing.
package datastore

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/errors"
)

// Interface abstracts the underlying database implementation and defines
// the operations the pipeline needs.
type Interface interface {
	Open() error
	Close() error
	SavePoints(points []SurveyPoint) error
	GetPointsByRun(runID string) ([]SurveyPoint, error)
	GetPointsByTransect(runID, transectID string) ([]SurveyPoint, error)
	DeleteRun(runID string) error
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB // GORM database instance
}

// New creates a datastore for the configured output, or nil when no
// database output is enabled.
func New(settings *conf.Settings) Interface {
	if settings.Output.SQLite.Enabled {
		return &SQLiteStore{Settings: settings}
	}
	return nil
}

// SavePoints stores a batch of georeferenced points in one transaction.
func (ds *DataStore) SavePoints(points []SurveyPoint) error {
	if ds.DB == nil {
		return errors.Newf("database connection is not initialized").
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	if len(points) == 0 {
		return nil
	}
	if err := ds.DB.Create(&points).Error; err != nil {
		return errors.Newf("saving %d survey points: %w", len(points), err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}

// GetPointsByRun returns every point saved by the given run, in insertion
// order.
func (ds *DataStore) GetPointsByRun(runID string) ([]SurveyPoint, error) {
	var points []SurveyPoint
	if err := ds.DB.Where("run_id = ?", runID).Order("id").Find(&points).Error; err != nil {
		return nil, fmt.Errorf("getting points for run %s: %w", runID, err)
	}
	return points, nil
}

// GetPointsByTransect returns one transect's points from the given run.
func (ds *DataStore) GetPointsByTransect(runID, transectID string) ([]SurveyPoint, error) {
	var points []SurveyPoint
	err := ds.DB.Where("run_id = ? AND transect_id = ?", runID, transectID).Order("id").Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("getting points for transect %s: %w", transectID, err)
	}
	return points, nil
}

// DeleteRun removes every point saved by the given run.
func (ds *DataStore) DeleteRun(runID string) error {
	if err := ds.DB.Where("run_id = ?", runID).Delete(&SurveyPoint{}).Error; err != nil {
		return fmt.Errorf("deleting run %s: %w", runID, err)
	}
	return nil
}

// performAutoMigration creates or updates the survey point table schema.
func performAutoMigration(db *gorm.DB) error {
	if err := db.AutoMigrate(&SurveyPoint{}); err != nil {
		return errors.Newf("migrating survey point schema: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}
