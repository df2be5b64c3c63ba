// Package conf holds the runtime settings for the georeferencing tool and
// loads them from the config file and command line via viper.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ColumnSettings maps logical survey fields to the column headers used in
// the input CSV. Defaults match the field vocabulary of the original RBA
// survey spreadsheets.
type ColumnSettings struct {
	TransectID string // stream location ID column
	RecordID   string // per-row record identity (pool number)
	StreamName string
	TribTo     string
	Distance   string // cumulative survey distance
	SyncFlag   string // optional; blank means "infer from X/Y presence"
	X          string
	Y          string
	Note       string
	Comment    string
}

// InputSettings holds survey input configuration
type InputSettings struct {
	Path    string // survey CSV path (usually given as CLI argument)
	Columns ColumnSettings
}

// SQLiteSettings holds SQLite feature table output configuration
type SQLiteSettings struct {
	Enabled bool
	Path    string
}

// PlotSettings holds QA plot output configuration
type PlotSettings struct {
	Enabled bool
	Path    string
	Title   string
}

// OutputSettings holds all output configuration
type OutputSettings struct {
	SRID   int // declared spatial reference of the survey coordinates
	SQLite SQLiteSettings
	Plot   PlotSettings
}

// LogSettings holds optional rotating file log configuration
type LogSettings struct {
	Enabled bool
	Path    string
}

// Settings contains all runtime configuration for the tool
type Settings struct {
	Debug  bool
	Log    LogSettings
	Input  InputSettings
	Output OutputSettings
}

var settingsInstance *Settings

// Load reads the configuration into a new Settings instance.
func Load() (*Settings, error) {
	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	// Validate settings
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// GetSettings returns the current settings instance, or nil before Load.
func GetSettings() *Settings {
	return settingsInstance
}

// initViper initializes viper with default values and reads the
// configuration file if one exists. A missing config file is not an
// error; the defaults stand.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := getDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// getDefaultConfigPaths returns the directories searched for config.yaml:
// the working directory first, then the user config directory.
func getDefaultConfigPaths() ([]string, error) {
	paths := []string{"."}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// No home directory (containers, CI); working directory only.
		return paths, nil
	}
	return append(paths, filepath.Join(configDir, "rba-georef")), nil
}

// setDefaultConfig sets the default values for each configuration parameter
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "rba-georef.log")

	viper.SetDefault("input.columns.transectid", "LocationID")
	viper.SetDefault("input.columns.recordid", "Pool_num")
	viper.SetDefault("input.columns.streamname", "Stream_Name")
	viper.SetDefault("input.columns.tribto", "Trib_To")
	viper.SetDefault("input.columns.distance", "Survey_Cum_Dist")
	viper.SetDefault("input.columns.syncflag", "Sync_Flag")
	viper.SetDefault("input.columns.x", "X_coord")
	viper.SetDefault("input.columns.y", "Y_coord")
	viper.SetDefault("input.columns.note", "XY_Note")
	viper.SetDefault("input.columns.comment", "Comment")

	viper.SetDefault("output.srid", 4326)
	viper.SetDefault("output.sqlite.enabled", false)
	viper.SetDefault("output.sqlite.path", "survey_points.db")
	viper.SetDefault("output.plot.enabled", false)
	viper.SetDefault("output.plot.path", "survey_qa.html")
	viper.SetDefault("output.plot.title", "RBA survey georeferencing QA")
}
