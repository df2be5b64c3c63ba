package datastore

import "time"

// SurveyPoint is one georeferenced survey record, the feature-table analog
// of the original point feature class. A GIS viewer pointed at the SQLite
// file reads these rows directly for visual QA.
type SurveyPoint struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID        string `gorm:"index"` // identifies the georeferencing run that produced the row
	TransectID   string `gorm:"index"`
	RecordID     string
	StreamName   string
	TribTo       string
	SurveyDist   float64
	AdjustedDist float64
	X            float64
	Y            float64
	SRID         int // declared spatial reference of X/Y
	Extrapolated bool
	Note         string
	Comment      string
	CreatedAt    time.Time
}
